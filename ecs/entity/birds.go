package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/prefabs"
)

// NewBirds scatters spec.Count birds, one per Spacing slot.
func NewBirds(w *ecs.World, spec *prefabs.BirdSpec, rng *rand.Rand) ([]ecs.Entity, error) {
	if spec == nil || rng == nil {
		return nil, nil
	}
	out := make([]ecs.Entity, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		baseY := spec.YMin + rng.Float64()*spec.YRange
		bird := &component.Bird{
			BaseY:     baseY,
			Drift:     spec.DriftMin + rng.Float64()*spec.DriftExtra,
			FlapSpeed: spec.FlapMin + rng.Float64()*spec.FlapExtra,
			FlapPhase: rng.Float64() * math.Pi * 2,
			BobAmp:    spec.BobAmpMin + rng.Float64()*spec.BobAmpExtra,
			BobPhase:  rng.Float64() * math.Pi * 2,
			Size:      spec.SizeMin + rng.Float64()*spec.SizeExtra,
		}

		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.BirdComponent.Kind(), bird); err != nil {
			return nil, fmt.Errorf("bird %d: add bird: %w", i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X: float64(i)*spec.Spacing + rng.Float64()*spec.Spacing/2,
			Y: baseY,
		}); err != nil {
			return nil, fmt.Errorf("bird %d: add transform: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
