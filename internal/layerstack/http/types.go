package http

import "github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"

// layerReq is the body of POST /api/layer and PUT /api/layer/:id. Every
// field is optional; absent fields keep their default or current value.
type layerReq struct {
	ID               *int            `json:"id"`
	Name             *string         `json:"name"`
	Type             *string         `json:"type"`
	Status           *string         `json:"status"`
	Description      *string         `json:"description"`
	Technology       *string         `json:"technology"`
	Responsibilities *string         `json:"responsibilities"`
	Connections      *[]int          `json:"connections"`
	Dependencies     *[]int          `json:"dependencies"`
	Visible          *bool           `json:"visible"`
	Locked           *bool           `json:"locked"`
	Substacks        *[]domain.Layer `json:"substacks"`
}

func (r layerReq) toPatch() domain.LayerPatch {
	p := domain.LayerPatch{
		ID:               r.ID,
		Name:             r.Name,
		Status:           r.Status,
		Description:      r.Description,
		Technology:       r.Technology,
		Responsibilities: r.Responsibilities,
		Connections:      r.Connections,
		Dependencies:     r.Dependencies,
		Visible:          r.Visible,
		Locked:           r.Locked,
		Substacks:        r.Substacks,
	}
	if r.Type != nil {
		t := domain.LayerType(*r.Type)
		p.Type = &t
	}
	return p
}

// projectReq is the body of POST /api/project.
type projectReq struct {
	Name   string         `json:"name"`
	Layers []domain.Layer `json:"layers"`
}

func (r projectReq) toProject() domain.Project {
	return domain.Project{Name: r.Name, Layers: r.Layers}
}
