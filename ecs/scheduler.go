package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs its systems in insertion order. A guarded scheduler skips
// the whole group on frames where its guard reports false.
type Scheduler struct {
	systems []System
	guard   func(w *World) bool
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// NewGuardedScheduler builds a group that only runs while guard(w) holds.
func NewGuardedScheduler(guard func(w *World) bool, systems ...System) *Scheduler {
	s := NewScheduler(systems...)
	s.guard = guard
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once and reports whether the group ran.
func (s *Scheduler) Update(w *World) bool {
	if s.guard != nil && !s.guard(w) {
		return false
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	return true
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
