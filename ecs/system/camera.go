package system

import (
	"math"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

// CameraSystem keeps the camera a fixed lead behind the player, never
// scrolling left of the world origin.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
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
	_, cam, ok := ecs.FirstValue(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam.ScrollOffset = math.Max(0, tr.X-cam.LeadOffset)
}

// ScrollOffset returns the current camera scroll, or 0 without a camera.
func ScrollOffset(w *ecs.World) float64 {
	if _, cam, ok := ecs.FirstValue(w, component.CameraComponent.Kind()); ok {
		return cam.ScrollOffset
	}
	return 0
}
