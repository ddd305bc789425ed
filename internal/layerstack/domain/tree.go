package domain

import "reflect"

// Insert appends l to the top-level layers when parentID is 0, otherwise
// to the substacks of the layer with that id.
func (p *Project) Insert(parentID int, l Layer) error {
	if parentID == 0 {
		p.Layers = append(p.Layers, l)
		return nil
	}
	parent := p.Find(parentID)
	if parent == nil {
		return ErrParentNotFound
	}
	parent.Substacks = append(parent.Substacks, l)
	return nil
}

// Remove deletes the layer with the given id together with its
// substacks, then scrubs every removed id from the remaining
// connections and dependencies. It returns the removed ids, or false if
// no such layer exists.
func (p *Project) Remove(id int) ([]int, bool) {
	var removed []int
	var remove func(layers []Layer) ([]Layer, bool)
	remove = func(layers []Layer) ([]Layer, bool) {
		for i := range layers {
			if layers[i].ID == id {
				removed = subtreeIDs(layers[i])
				return append(layers[:i:i], layers[i+1:]...), true
			}
			if sub, ok := remove(layers[i].Substacks); ok {
				layers[i].Substacks = sub
				return layers, true
			}
		}
		return layers, false
	}

	layers, ok := remove(p.Layers)
	if !ok {
		return nil, false
	}
	p.Layers = layers
	p.Scrub(removed...)
	return removed, true
}

// Scrub drops the given ids from every connection and dependency list.
func (p *Project) Scrub(ids ...int) {
	if len(ids) == 0 {
		return
	}
	gone := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		gone[id] = struct{}{}
	}
	p.Walk(func(l *Layer, _ int) bool {
		l.Connections = without(l.Connections, gone)
		l.Dependencies = without(l.Dependencies, gone)
		return true
	})
}

// FirstLocked returns the id of the first locked layer in l's subtree,
// l included.
func FirstLocked(l Layer) (int, bool) {
	if l.Locked {
		return l.ID, true
	}
	for _, s := range l.Substacks {
		if id, ok := FirstLocked(s); ok {
			return id, true
		}
	}
	return 0, false
}

// DroppedLocked compares a substack list before and after a replacement
// and returns the first locked layer of before that after does not carry
// unchanged. Locked layers may move within the list.
func DroppedLocked(before, after []Layer) (int, bool) {
	replaced := Project{Layers: after}
	var id int
	var dropped bool
	Project{Layers: before}.Walk(func(l *Layer, _ int) bool {
		if !l.Locked {
			return true
		}
		got := replaced.Find(l.ID)
		if got == nil || !reflect.DeepEqual(got.Clone(), l.Clone()) {
			id, dropped = l.ID, true
			return false
		}
		return true
	})
	return id, dropped
}

func subtreeIDs(l Layer) []int {
	ids := []int{l.ID}
	for _, s := range l.Substacks {
		ids = append(ids, subtreeIDs(s)...)
	}
	return ids
}

func without(in []int, gone map[int]struct{}) []int {
	out := make([]int, 0, len(in))
	for _, id := range in {
		if _, ok := gone[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
