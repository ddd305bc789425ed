package domain

// LayerType is the category of a layer. It drives the display color.
type LayerType string

const (
	TypeCore     LayerType = "Core"
	TypeFrontend LayerType = "Frontend"
	TypeBackend  LayerType = "Backend"
	TypeDatabase LayerType = "Database"
	TypeDevOps   LayerType = "DevOps"
	TypeAPI      LayerType = "API"
	TypeOther    LayerType = "Other"
)

// Layer is one architectural component of a project. Substacks nest
// child layers of the same shape.
type Layer struct {
	ID               int       `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Type             LayerType `json:"type" yaml:"type"`
	Status           string    `json:"status" yaml:"status"`
	Description      string    `json:"description" yaml:"description"`
	Technology       string    `json:"technology" yaml:"technology"`
	Responsibilities string    `json:"responsibilities" yaml:"responsibilities"`
	Connections      []int     `json:"connections" yaml:"connections"`
	Dependencies     []int     `json:"dependencies" yaml:"dependencies"`
	Visible          bool      `json:"visible" yaml:"visible"`
	Locked           bool      `json:"locked" yaml:"locked"`
	Substacks        []Layer   `json:"substacks" yaml:"substacks"`
}

// Project is the whole diagram: a name and the ordered top-level layers.
type Project struct {
	Name   string  `json:"name" yaml:"name"`
	Layers []Layer `json:"layers" yaml:"layers"`
}

// Clone returns a deep copy of the layer. Nil sequences become empty
// ones so the JSON shape never carries null arrays.
func (l Layer) Clone() Layer {
	out := l
	out.Connections = append(make([]int, 0, len(l.Connections)), l.Connections...)
	out.Dependencies = append(make([]int, 0, len(l.Dependencies)), l.Dependencies...)
	out.Substacks = make([]Layer, 0, len(l.Substacks))
	for _, s := range l.Substacks {
		out.Substacks = append(out.Substacks, s.Clone())
	}
	return out
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := Project{Name: p.Name, Layers: make([]Layer, 0, len(p.Layers))}
	for _, l := range p.Layers {
		out.Layers = append(out.Layers, l.Clone())
	}
	return out
}

// Walk visits every layer depth-first in document order. depth is 0 for
// top-level layers. Returning false stops the walk. The pointers handed
// to fn alias p's layers, so fn may edit them in place.
func (p Project) Walk(fn func(l *Layer, depth int) bool) {
	var walk func(layers []Layer, depth int) bool
	walk = func(layers []Layer, depth int) bool {
		for i := range layers {
			if !fn(&layers[i], depth) {
				return false
			}
			if !walk(layers[i].Substacks, depth+1) {
				return false
			}
		}
		return true
	}
	walk(p.Layers, 0)
}

// LayerIDs returns every id in the project, substacks included, in
// document order.
func (p Project) LayerIDs() []int {
	ids := make([]int, 0, len(p.Layers))
	p.Walk(func(l *Layer, _ int) bool {
		ids = append(ids, l.ID)
		return true
	})
	return ids
}

// Find returns a pointer to the layer with the given id, or nil. The
// pointer aliases p's layers.
func (p Project) Find(id int) *Layer {
	var found *Layer
	p.Walk(func(l *Layer, _ int) bool {
		if l.ID == id {
			found = l
			return false
		}
		return true
	})
	return found
}

// MaxID is the largest id in use, 0 for an empty project.
func (p Project) MaxID() int {
	max := 0
	p.Walk(func(l *Layer, _ int) bool {
		if l.ID > max {
			max = l.ID
		}
		return true
	})
	return max
}
