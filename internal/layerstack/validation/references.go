// Package validation checks the referential integrity of a project: every
// connection and dependency must name a layer that exists, ids must be
// unique and categories known.
package validation

import (
	"fmt"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
)

const (
	IssueOrphanedReference = "orphaned-reference"
	IssueDuplicateID       = "duplicate-id"
	IssueInvalidID         = "invalid-id"
	IssueUnknownType       = "unknown-type"

	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Issue is one integrity finding.
type Issue struct {
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	Context   string `json:"context"`
	Reference int    `json:"reference,omitempty"`
	Message   string `json:"message"`
}

// Report is the result of Validate. Valid is false only when a
// critical issue was found; warnings do not block mutations.
type Report struct {
	Valid  bool    `json:"valid"`
	Errors []Issue `json:"errors"`
}

// FirstCritical returns the first critical issue, if any.
func (r Report) FirstCritical() (Issue, bool) {
	for _, i := range r.Errors {
		if i.Severity == SeverityCritical {
			return i, true
		}
	}
	return Issue{}, false
}

// Reference is one place that points at a layer.
type Reference struct {
	LayerID int    `json:"layer_id"`
	Context string `json:"context"`
	Index   int    `json:"index"`
}

// LayerReferences lists who points at a layer, split by edge kind.
type LayerReferences struct {
	Connections  []Reference `json:"connections"`
	Dependencies []Reference `json:"dependencies"`
}

// Empty reports whether nothing references the layer.
func (r LayerReferences) Empty() bool {
	return len(r.Connections) == 0 && len(r.Dependencies) == 0
}

type visited struct {
	layer   *domain.Layer
	context string
}

// flatten lists every layer with a human readable path such as
// "Layer 0: React UI > Substack 1: State Management".
func flatten(p *domain.Project) []visited {
	var out []visited
	var walk func(layers []domain.Layer, prefix string, depth int)
	walk = func(layers []domain.Layer, prefix string, depth int) {
		for i := range layers {
			l := &layers[i]
			label := "Layer"
			if depth > 0 {
				label = "Substack"
			}
			ctx := fmt.Sprintf("%s %d: %s", label, i, l.Name)
			if prefix != "" {
				ctx = prefix + " > " + ctx
			}
			out = append(out, visited{layer: l, context: ctx})
			walk(l.Substacks, ctx, depth+1)
		}
	}
	walk(p.Layers, "", 0)
	return out
}

// Validate inspects the whole project, substacks included.
func Validate(p domain.Project) Report {
	issues := make([]Issue, 0)
	layers := flatten(&p)

	seen := make(map[int]string, len(layers))
	for _, v := range layers {
		id := v.layer.ID
		if id <= 0 {
			issues = append(issues, Issue{
				Type:     IssueInvalidID,
				Severity: SeverityCritical,
				Context:  v.context,
				Message:  fmt.Sprintf("Layer ID must be a positive integer, got %d", id),
			})
		} else if first, dup := seen[id]; dup {
			issues = append(issues, Issue{
				Type:      IssueDuplicateID,
				Severity:  SeverityCritical,
				Context:   v.context,
				Reference: id,
				Message:   fmt.Sprintf("Layer ID %d is already used by %s", id, first),
			})
		} else {
			seen[id] = v.context
		}

		if !v.layer.Type.Valid() {
			issues = append(issues, Issue{
				Type:     IssueUnknownType,
				Severity: SeverityCritical,
				Context:  v.context,
				Message:  fmt.Sprintf("Unknown layer type: %q", v.layer.Type),
			})
		}
	}

	for _, v := range layers {
		for _, target := range v.layer.Connections {
			if _, ok := seen[target]; !ok {
				issues = append(issues, orphan(v.context, target, "Connection"))
			}
		}
		for _, target := range v.layer.Dependencies {
			if _, ok := seen[target]; !ok {
				issues = append(issues, orphan(v.context, target, "Dependency"))
			}
		}
	}

	issues = append(issues, dependencyCycles(layers)...)

	report := Report{Errors: issues}
	_, critical := report.FirstCritical()
	report.Valid = !critical
	return report
}

func orphan(context string, target int, kind string) Issue {
	return Issue{
		Type:      IssueOrphanedReference,
		Severity:  SeverityCritical,
		Context:   context,
		Reference: target,
		Message:   fmt.Sprintf("%s references non-existent layer ID: %d", kind, target),
	}
}

// References finds every layer whose connections or dependencies name id.
func References(p domain.Project, id int) LayerReferences {
	refs := LayerReferences{Connections: []Reference{}, Dependencies: []Reference{}}
	for _, v := range flatten(&p) {
		for i, target := range v.layer.Connections {
			if target == id {
				refs.Connections = append(refs.Connections, Reference{LayerID: v.layer.ID, Context: v.context, Index: i})
			}
		}
		for i, target := range v.layer.Dependencies {
			if target == id {
				refs.Dependencies = append(refs.Dependencies, Reference{LayerID: v.layer.ID, Context: v.context, Index: i})
			}
		}
	}
	return refs
}
