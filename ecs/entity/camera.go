package entity

import (
	"fmt"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

func NewCamera(w *ecs.World, lead float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{LeadOffset: lead}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
