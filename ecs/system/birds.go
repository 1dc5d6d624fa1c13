package system

import (
	"math"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/prefabs"
)

// BirdSystem drifts the background flock left, wrapping each bird around
// the flock span, and advances flap and bob phases.
type BirdSystem struct {
	spec *prefabs.BirdSpec
}

func NewBirdSystem(spec *prefabs.BirdSpec) *BirdSystem {
	return &BirdSystem{spec: spec}
}

func (s *BirdSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}
	span := s.Span()
	ecs.ForEach2(w, component.BirdComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Bird, tr *component.Transform) {
		b.FlapPhase += b.FlapSpeed
		b.BobPhase += s.spec.BobFreq
		tr.X -= b.Drift
		if span > 0 && tr.X < 0 {
			tr.X += span
		}
		tr.Y = b.BaseY + math.Sin(b.BobPhase)*b.BobAmp
	})
}

// Span is the horizontal length the flock wraps over.
func (s *BirdSystem) Span() float64 {
	if s.spec == nil {
		return 0
	}
	return float64(s.spec.Count) * s.spec.Spacing
}

// BirdScreenX maps a bird's world anchor to screen space with parallax,
// wrapping so the flock tiles endlessly.
func BirdScreenX(x, scroll, parallax, span, margin float64) float64 {
	sx := x - scroll*parallax
	if span <= 0 {
		return sx
	}
	sx = math.Mod(sx+margin, span)
	if sx < 0 {
		sx += span
	}
	return sx - margin
}
