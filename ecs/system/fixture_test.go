package system

import (
	"testing"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/ecs/entity"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

const groundY = 720

// testLayout is a short level with one of everything:
//
//	brick      x 300..420   top 608
//	heart row  x 800..920   top 560, question block 840..880
//	pipe       x 600..648   top 656
//	stairs     x 1200..1320 top 680, single block 1240..1280 top 640
//	flagpole   x 2000
func testLayout() *levels.Layout {
	return &levels.Layout{
		Tile:        40,
		GroundStrip: 80,
		MinX:        100,
		PipeWidth:   48,
		PipeHeights: map[string]float64{"short": 64},
		Pipes:       []levels.PipeSpec{{X: 600, Type: "short"}},
		Bricks:      []levels.BrickSpec{{X: 300, YOff: -112, W: 120, H: 24}},
		HeartRows:   []levels.HeartRowSpec{{X: 800, YOff: -160, Blocks: 3, HeartIndex: 1}},
		Staircase:   levels.StaircaseSpec{Left: 1200, BaseBlocks: 3, Rows: 2},
		Flagpole: levels.FlagpoleSpec{
			X: 2000, Height: 380, CollisionWidth: 16, HitboxExtend: 24,
			PlayerOffsetX: 6, PlayerOffsetY: 10, FlagWidth: 40, FlagHeight: 44,
		},
		Castle: levels.CastleSpec{X: 2200, Width: 560, Height: 500},
	}
}

type fixture struct {
	w      *ecs.World
	geo    *levels.Geometry
	spec   *prefabs.PhysicsSpec
	phys   *PlayerPhysicsSystem
	camera *CameraSystem
	pickup *HeartPickupSystem

	tr    *component.Transform
	body  *component.Player
	input *component.Input
	run   *component.RunState
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		t.Fatalf("LoadPhysicsSpec: %v", err)
	}
	geo := levels.Build(testLayout(), groundY)
	w := ecs.NewWorld()

	if _, err := entity.NewRunState(w); err != nil {
		t.Fatalf("NewRunState: %v", err)
	}
	player, err := entity.NewPlayer(w, geo, spec)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if _, err := entity.NewCamera(w, spec.CameraLead); err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	if _, err := entity.NewHearts(w, geo, spec, nil); err != nil {
		t.Fatalf("NewHearts: %v", err)
	}

	f := &fixture{
		w:      w,
		geo:    geo,
		spec:   spec,
		phys:   NewPlayerPhysicsSystem(geo, spec),
		camera: NewCameraSystem(),
		pickup: NewHeartPickupSystem(spec),
	}
	f.tr, _ = ecs.Get(w, player, component.TransformComponent.Kind())
	f.body, _ = ecs.Get(w, player, component.PlayerComponent.Kind())
	f.input, _ = ecs.Get(w, player, component.InputComponent.Kind())
	_, f.run, _ = ecs.FirstValue(w, component.RunStateComponent.Kind())
	f.run.Running = true
	return f
}

// step runs one physics frame with camera and pickup, the way the loop does.
func (f *fixture) step() bool {
	done := f.phys.Step(f.w)
	f.camera.Update(f.w)
	f.pickup.Update(f.w)
	return done
}

func (f *fixture) heart(id int) (*component.QuestionBlock, *component.Heart, *component.Transform) {
	var (
		qb *component.QuestionBlock
		h  *component.Heart
		tr *component.Transform
	)
	ecs.ForEach3(f.w, component.QuestionBlockComponent.Kind(), component.HeartComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, q *component.QuestionBlock, hh *component.Heart, t *component.Transform) {
			if hh.ID == id {
				qb, h, tr = q, hh, t
			}
		})
	return qb, h, tr
}

func (f *fixture) events(kind string) int {
	n := 0
	for _, evt := range f.w.Events().Pending() {
		if evt.Type == kind {
			n++
		}
	}
	return n
}
