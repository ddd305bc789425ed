package repository

import (
	"fmt"
	"sync"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
)

// ProjectStore owns the single in-memory project. Every value handed in
// or out is a deep copy, so callers never share memory with the store.
type ProjectStore struct {
	mu      sync.RWMutex
	project domain.Project
	seed    domain.Project
}

// NewProjectStore creates a store holding a copy of initial. Reset
// restores that same content.
func NewProjectStore(initial domain.Project) *ProjectStore {
	return &ProjectStore{
		project: initial.Clone(),
		seed:    initial.Clone(),
	}
}

// Get returns a copy of the current project
func (s *ProjectStore) Get() domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project.Clone()
}

// Replace swaps the stored project for a copy of p
func (s *ProjectStore) Replace(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p.Clone()
}

// Mutate applies fn to a working copy of the project under the write
// lock. The copy is committed only when fn returns nil, so a failed
// mutation leaves the stored project untouched. The committed project is
// returned.
func (s *ProjectStore) Mutate(fn func(p *domain.Project) error) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.project.Clone()
	if err := fn(&work); err != nil {
		return domain.Project{}, err
	}
	s.project = work
	return work.Clone(), nil
}

// Layer returns a copy of the layer with the given id
func (s *ProjectStore) Layer(id int) (domain.Layer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l := s.project.Find(id)
	if l == nil {
		return domain.Layer{}, domain.ErrLayerNotFound
	}
	return l.Clone(), nil
}

// Delete removes a layer and its substacks and scrubs references to
// them. Nothing is removed while any layer of the subtree is locked. It
// returns the removed ids.
func (s *ProjectStore) Delete(id int) ([]int, error) {
	var removed []int
	_, err := s.Mutate(func(p *domain.Project) error {
		l := p.Find(id)
		if l == nil {
			return domain.ErrLayerNotFound
		}
		if locked, ok := domain.FirstLocked(*l); ok {
			return fmt.Errorf("%w: %d", domain.ErrLayerLocked, locked)
		}
		removed, _ = p.Remove(id)
		return nil
	})
	return removed, err
}

// Reset restores the seed project.
func (s *ProjectStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = s.seed.Clone()
}
