package entity

import (
	"fmt"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

// NewPlayer spawns the player standing on the ground at the left bound.
func NewPlayer(w *ecs.World, geo *levels.Geometry, spec *prefabs.PhysicsSpec) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X: geo.MinX,
		Y: geo.GroundY,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		Width:  spec.PlayerWidth,
		Height: spec.PlayerHeight,
		Facing: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return player, nil
}
