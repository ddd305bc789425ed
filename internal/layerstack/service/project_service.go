package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/events"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/repository"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/templates"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/validation"
	"go.uber.org/zap"
)

const (
	defaultLayerName   = "New Layer"
	defaultLayerStatus = "Active"
)

// ProjectService applies the project operations on top of the store and
// keeps the stored project valid after every mutation.
type ProjectService struct {
	store     *repository.ProjectStore
	events    events.Publisher
	log       *zap.Logger
	templates *templates.Catalog

	auditMu      sync.Mutex
	lastFindings string
}

// NewProjectService creates a new ProjectService. A nil publisher or
// logger disables that concern.
func NewProjectService(store *repository.ProjectStore, pub events.Publisher, log *zap.Logger) *ProjectService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectService{
		store:     store,
		events:    pub,
		log:       log,
		templates: templates.Default(),
	}
}

// Project returns the current project
func (s *ProjectService) Project(ctx context.Context) domain.Project {
	return s.store.Get()
}

// SaveProject replaces the stored project after validating it
func (s *ProjectService) SaveProject(ctx context.Context, p domain.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidProject)
	}
	if err := checkNames(&p); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidProject, err.Error())
	}
	if issue, bad := validation.Validate(p).FirstCritical(); bad {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidProject, issue.Context, issue.Message)
	}

	s.store.Replace(p)
	s.log.Info("project saved", zap.String("name", p.Name), zap.Int("layers", len(p.LayerIDs())))
	s.events.Publish(ctx, events.Event{Kind: events.KindProjectSaved, Payload: map[string]any{"name": p.Name}})
	return nil
}

// Templates lists the starter projects that LoadTemplate accepts
func (s *ProjectService) Templates(ctx context.Context) []templates.Summary {
	return s.templates.List()
}

// LoadTemplate replaces the current project with a copy of the named
// template.
func (s *ProjectService) LoadTemplate(ctx context.Context, key string) (domain.Project, error) {
	p, ok := s.templates.Get(key)
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
	}

	s.store.Replace(p)
	s.log.Info("template loaded", zap.String("template", key), zap.Int("layers", len(p.LayerIDs())))
	s.events.Publish(ctx, events.Event{Kind: events.KindProjectSaved, Payload: map[string]any{"name": p.Name, "template": key}})
	return p, nil
}

// Layer returns one layer by id, top level or nested
func (s *ProjectService) Layer(ctx context.Context, id int) (domain.Layer, error) {
	return s.store.Layer(id)
}

// AddLayer creates a layer from the supplied fields, filling the rest
// with defaults. parentID 0 appends to the top level, otherwise to that
// layer's substacks. A missing or zero id gets the next id above both
// the project and the supplied substacks.
func (s *ProjectService) AddLayer(ctx context.Context, parentID int, in domain.LayerPatch) (domain.Layer, error) {
	var created domain.Layer

	_, err := s.store.Mutate(func(p *domain.Project) error {
		layer := domain.Layer{
			Name:         defaultLayerName,
			Type:         domain.TypeOther,
			Status:       defaultLayerStatus,
			Connections:  []int{},
			Dependencies: []int{},
			Visible:      true,
			Substacks:    []domain.Layer{},
		}
		if parentID != 0 {
			parent := p.Find(parentID)
			if parent == nil {
				return domain.ErrParentNotFound
			}
			layer.Type = parent.Type
		}
		in.Apply(&layer)

		switch {
		case in.ID == nil || *in.ID == 0:
			next := p.MaxID()
			if m := (domain.Project{Layers: layer.Substacks}).MaxID(); m > next {
				next = m
			}
			layer.ID = next + 1
		case *in.ID < 0:
			return fmt.Errorf("%w: id must be positive", domain.ErrInvalidLayer)
		case p.Find(*in.ID) != nil:
			return fmt.Errorf("%w: %d", domain.ErrDuplicateLayerID, *in.ID)
		default:
			layer.ID = *in.ID
		}

		if err := p.Insert(parentID, layer); err != nil {
			return err
		}
		if err := checkProject(p); err != nil {
			return err
		}
		created = layer.Clone()
		return nil
	})
	if err != nil {
		return domain.Layer{}, err
	}

	s.log.Info("layer added", zap.Int("layer_id", created.ID), zap.Int("parent_id", parentID))
	s.events.Publish(ctx, events.Event{Kind: events.KindLayerAdded, LayerID: created.ID, Payload: created})
	return created, nil
}

// UpdateLayer applies patch to the layer with the given id. Locked
// layers only accept changes to their visible and locked flags, and a
// substacks replacement must carry every locked substack unchanged.
func (s *ProjectService) UpdateLayer(ctx context.Context, id int, patch domain.LayerPatch) (domain.Layer, error) {
	if patch.ID != nil && *patch.ID != id {
		return domain.Layer{}, fmt.Errorf("%w: id cannot be changed", domain.ErrInvalidLayer)
	}

	var updated domain.Layer
	_, err := s.store.Mutate(func(p *domain.Project) error {
		l := p.Find(id)
		if l == nil {
			return domain.ErrLayerNotFound
		}
		if l.Locked && !patch.FlagsOnly() {
			return domain.ErrLayerLocked
		}
		if patch.Substacks != nil {
			if locked, ok := domain.DroppedLocked(l.Substacks, *patch.Substacks); ok {
				return fmt.Errorf("%w: substack %d", domain.ErrLayerLocked, locked)
			}
		}
		patch.Apply(l)
		if err := checkProject(p); err != nil {
			return err
		}
		updated = l.Clone()
		return nil
	})
	if err != nil {
		return domain.Layer{}, err
	}

	s.log.Info("layer updated", zap.Int("layer_id", id))
	s.events.Publish(ctx, events.Event{Kind: events.KindLayerUpdated, LayerID: id, Payload: updated})
	return updated, nil
}

// DeleteLayer removes the layer and its substacks and scrubs every
// reference to them. It returns the removed ids.
func (s *ProjectService) DeleteLayer(ctx context.Context, id int) ([]int, error) {
	removed, err := s.store.Delete(id)
	if err != nil {
		return nil, err
	}

	s.log.Info("layer deleted", zap.Int("layer_id", id), zap.Ints("removed", removed))
	s.events.Publish(ctx, events.Event{Kind: events.KindLayerDeleted, LayerID: id, RemovedIDs: removed})
	return removed, nil
}

// References reports which layers point at id
func (s *ProjectService) References(ctx context.Context, id int) (validation.LayerReferences, error) {
	p := s.store.Get()
	if p.Find(id) == nil {
		return validation.LayerReferences{}, domain.ErrLayerNotFound
	}
	return validation.References(p, id), nil
}

// Validate runs the integrity checks on the current project
func (s *ProjectService) Validate(ctx context.Context) validation.Report {
	return validation.Validate(s.store.Get())
}

// Audit validates the current project and logs every finding. Mutations
// never commit a critical finding, so on a running service the audit
// mostly reports dependency-cycle warnings, plus anything already wrong
// in the seed project. An audit.changed event is published whenever the
// findings differ from the previous audit.
func (s *ProjectService) Audit(ctx context.Context) validation.Report {
	report := s.Validate(ctx)
	for _, issue := range report.Errors {
		s.log.Warn("reference audit finding",
			zap.String("type", issue.Type),
			zap.String("severity", issue.Severity),
			zap.String("context", issue.Context),
			zap.Int("reference", issue.Reference),
			zap.String("message", issue.Message),
		)
	}
	if len(report.Errors) == 0 {
		s.log.Debug("reference audit passed")
	}

	findings := fingerprint(report)
	s.auditMu.Lock()
	changed := findings != s.lastFindings
	s.lastFindings = findings
	s.auditMu.Unlock()

	if changed {
		s.events.Publish(ctx, events.Event{Kind: events.KindAuditChanged, Payload: report})
	}
	return report
}

func fingerprint(r validation.Report) string {
	var b strings.Builder
	for _, issue := range r.Errors {
		fmt.Fprintf(&b, "%s|%s|%d|%s\n", issue.Type, issue.Context, issue.Reference, issue.Message)
	}
	return b.String()
}

// checkProject turns the first integrity finding into an ErrInvalidLayer.
func checkProject(p *domain.Project) error {
	if err := checkNames(p); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidLayer, err.Error())
	}
	first, bad := validation.Validate(*p).FirstCritical()
	if !bad {
		return nil
	}
	if first.Type == validation.IssueDuplicateID {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateLayerID, first.Message)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidLayer, first.Message)
}

var errBlankName = errors.New("layer name is required")

func checkNames(p *domain.Project) error {
	var err error
	p.Walk(func(l *domain.Layer, _ int) bool {
		if strings.TrimSpace(l.Name) == "" {
			err = fmt.Errorf("%w (layer %d)", errBlankName, l.ID)
			return false
		}
		return true
	})
	return err
}
