package entity

import (
	"fmt"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

// NewRunState creates the run and fireworks singletons on one entity.
func NewRunState(w *ecs.World) (ecs.Entity, error) {
	run := ecs.CreateEntity(w)
	if err := ecs.Add(w, run, component.RunStateComponent.Kind(), &component.RunState{}); err != nil {
		return 0, fmt.Errorf("run: add run state: %w", err)
	}
	if err := ecs.Add(w, run, component.FireworksComponent.Kind(), &component.Fireworks{}); err != nil {
		return 0, fmt.Errorf("run: add fireworks: %w", err)
	}
	return run, nil
}
