package system

import (
	"math"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/prefabs"
)

// HeartPickupSystem collects at most one released heart per frame using
// independent x/y distance thresholds between the two centres.
type HeartPickupSystem struct {
	spec *prefabs.PhysicsSpec
}

func NewHeartPickupSystem(spec *prefabs.PhysicsSpec) *HeartPickupSystem {
	return &HeartPickupSystem{spec: spec}
}

func (s *HeartPickupSystem) SetSpec(spec *prefabs.PhysicsSpec) {
	if spec != nil {
		s.spec = spec
	}
}

func (s *HeartPickupSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	_, run, ok := ecs.FirstValue(w, component.RunStateComponent.Kind())
	if !ok {
		return
	}

	px := tr.X + body.Width/2
	py := tr.Y - body.Height/2
	collected := false

	ecs.ForEach2(w, component.HeartComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, heart *component.Heart, ht *component.Transform) {
		if collected || heart.Collected || !heart.Released {
			return
		}
		dx := px - (ht.X + heart.Width/2)
		dy := py - (ht.Y + heart.Height/2)
		if math.Abs(dx) >= s.spec.Heart.CollectDX || math.Abs(dy) >= s.spec.Heart.CollectDY {
			return
		}

		heart.Collected = true
		run.HeartsCollected++
		collected = true
		w.Events().Push(ecs.Event{Type: ecs.EventHeartCollected, Data: heart.ID})
	})
}
