package ecs

import "github.com/milk9111/memorylane/ecs/component"

// intersect returns entities present in every listed store, walking the
// smallest store first. A missing store yields nil.
func intersect(w *World, ids ...component.ComponentID) []Entity {
	sets := make([]*SparseSet, 0, len(ids))
	var smallest *SparseSet
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}
	if smallest == nil {
		return nil
	}

	var out []Entity
	for _, e := range smallest.Entities() {
		all := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}
