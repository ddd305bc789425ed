// Package templates holds the starter projects a user can load in place
// of the current one. Each template is a YAML file under catalog/, keyed
// by its file name.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/validation"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

const defaultStatus = "Active"

// Summary describes one template without its layers.
type Summary struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Layers int    `json:"layers"`
}

// Catalog is an immutable set of templates.
type Catalog struct {
	keys     []string
	projects map[string]domain.Project
}

// Load parses and validates every embedded template.
func Load() (*Catalog, error) {
	entries, err := catalogFS.ReadDir("catalog")
	if err != nil {
		return nil, fmt.Errorf("read template catalog: %w", err)
	}

	c := &Catalog{projects: make(map[string]domain.Project, len(entries))}
	for _, e := range entries {
		name := e.Name()
		data, err := catalogFS.ReadFile(path.Join("catalog", name))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		p, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		key := strings.TrimSuffix(name, path.Ext(name))
		c.keys = append(c.keys, key)
		c.projects[key] = p
	}
	sort.Strings(c.keys)
	return c, nil
}

var defaultCatalog = mustLoad()

func mustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the catalog built into the binary.
func Default() *Catalog { return defaultCatalog }

// parse decodes one template strictly and fills the fields every
// template shares: layers start visible, unlocked and Active.
func parse(data []byte) (domain.Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p domain.Project
	if err := dec.Decode(&p); err != nil {
		return domain.Project{}, fmt.Errorf("decode: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return domain.Project{}, fmt.Errorf("name is required")
	}

	p.Walk(func(l *domain.Layer, _ int) bool {
		l.Visible = true
		if l.Status == "" {
			l.Status = defaultStatus
		}
		return true
	})
	p = p.Clone()

	if issue, bad := validation.Validate(p).FirstCritical(); bad {
		return domain.Project{}, fmt.Errorf("%s: %s", issue.Context, issue.Message)
	}
	return p, nil
}

// List returns every template in key order.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.keys))
	for _, k := range c.keys {
		p := c.projects[k]
		out = append(out, Summary{Key: k, Name: p.Name, Layers: len(p.LayerIDs())})
	}
	return out
}

// Get returns a copy of the template stored under key.
func (c *Catalog) Get(key string) (domain.Project, bool) {
	p, ok := c.projects[key]
	if !ok {
		return domain.Project{}, false
	}
	return p.Clone(), true
}
