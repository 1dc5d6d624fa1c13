package system

import (
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

// HeartPulseSystem advances the pulse angle of visible hearts by a fixed
// amount per tick. It runs while paused so hearts keep beating behind the
// memory overlay.
type HeartPulseSystem struct {
	speed float64
}

func NewHeartPulseSystem(speed float64) *HeartPulseSystem {
	return &HeartPulseSystem{speed: speed}
}

func (s *HeartPulseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.HeartComponent.Kind(), func(_ ecs.Entity, heart *component.Heart) {
		if heart.Released && !heart.Collected {
			heart.Angle += s.speed
		}
	})
}

func (s *HeartPulseSystem) SetSpeed(speed float64) {
	s.speed = speed
}
