package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

// NewHearts creates one entity per heart row carrying both the question
// block and the heart it releases. The heart starts hidden, centred over
// its block at the release height.
func NewHearts(w *ecs.World, geo *levels.Geometry, spec *prefabs.PhysicsSpec, rng *rand.Rand) ([]ecs.Entity, error) {
	hs := spec.Heart
	out := make([]ecs.Entity, 0, len(geo.HeartRows))
	for i, row := range geo.HeartRows {
		qx := row.QuestionX(geo.Tile)
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.QuestionBlockComponent.Kind(), &component.QuestionBlock{
			Index: i,
			X:     qx,
			Top:   row.Y,
			Size:  geo.Tile,
		}); err != nil {
			return nil, fmt.Errorf("heart %d: add question block: %w", i, err)
		}

		angle := 0.0
		if rng != nil {
			angle = rng.Float64() * math.Pi * 2
		}
		if err := ecs.Add(w, e, component.HeartComponent.Kind(), &component.Heart{
			ID:     i,
			Width:  hs.Width,
			Height: hs.Height,
			Angle:  angle,
		}); err != nil {
			return nil, fmt.Errorf("heart %d: add heart: %w", i, err)
		}

		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X: qx + geo.Tile/2 - hs.Width/2,
			Y: row.Y - hs.Height - hs.ReleaseGap,
		}); err != nil {
			return nil, fmt.Errorf("heart %d: add transform: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
