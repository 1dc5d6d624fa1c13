package entity

import (
	"math/rand"
	"testing"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

func loadGeometry(t *testing.T) (*levels.Geometry, *prefabs.PhysicsSpec) {
	t.Helper()
	layout, err := levels.LoadLayout(levels.DefaultLevel)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		t.Fatalf("load physics: %v", err)
	}
	return levels.Build(layout, 720), spec
}

func TestNewHeartsPlacement(t *testing.T) {
	geo, spec := loadGeometry(t)
	w := ecs.NewWorld()
	hearts, err := NewHearts(w, geo, spec, nil)
	if err != nil {
		t.Fatalf("NewHearts: %v", err)
	}
	if len(hearts) != len(geo.HeartRows) {
		t.Fatalf("hearts = %d, want %d", len(hearts), len(geo.HeartRows))
	}

	for i, e := range hearts {
		row := geo.HeartRows[i]
		block, ok := ecs.Get(w, e, component.QuestionBlockComponent.Kind())
		if !ok {
			t.Fatalf("heart %d: missing question block", i)
		}
		heart, _ := ecs.Get(w, e, component.HeartComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		if block.Index != i || heart.ID != i {
			t.Fatalf("heart %d: index %d id %d", i, block.Index, heart.ID)
		}
		if block.Hit || heart.Released || heart.Collected {
			t.Fatalf("heart %d: not fresh", i)
		}
		if block.X != row.QuestionX(geo.Tile) || block.Top != row.Y {
			t.Fatalf("heart %d: block at (%v,%v)", i, block.X, block.Top)
		}
		if got, want := tr.X+heart.Width/2, block.X+geo.Tile/2; got != want {
			t.Fatalf("heart %d: centre %v, want %v", i, got, want)
		}
		if got, want := tr.Y, row.Y-spec.Heart.Height-spec.Heart.ReleaseGap; got != want {
			t.Fatalf("heart %d: y %v, want %v", i, got, want)
		}
		if heart.Angle != 0 {
			t.Fatalf("heart %d: angle %v without rng", i, heart.Angle)
		}
	}
}

func TestNewHeartsRandomPhase(t *testing.T) {
	geo, spec := loadGeometry(t)
	w := ecs.NewWorld()
	hearts, err := NewHearts(w, geo, spec, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewHearts: %v", err)
	}
	nonZero := 0
	for _, e := range hearts {
		heart, _ := ecs.Get(w, e, component.HeartComponent.Kind())
		if heart.Angle != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Fatal("no heart got a random phase")
	}
}

func TestNewPlayerSpawn(t *testing.T) {
	geo, spec := loadGeometry(t)
	w := ecs.NewWorld()
	e, err := NewPlayer(w, geo, spec)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	if tr.X != geo.MinX || tr.Y != geo.GroundY {
		t.Fatalf("spawn = (%v,%v)", tr.X, tr.Y)
	}
	if body.Width != spec.PlayerWidth || body.Height != spec.PlayerHeight || body.Facing != 1 {
		t.Fatalf("body = %+v", *body)
	}
	if !ecs.Has(w, e, component.InputComponent.Kind()) {
		t.Fatal("player has no input")
	}
}

func TestNewAudio(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		players []component.SoundPlayer
		wantErr bool
	}{
		{name: "parallel", names: []string{"jump", "pop"}, players: make([]component.SoundPlayer, 2)},
		{name: "empty", names: nil, players: nil},
		{name: "mismatch", names: []string{"jump"}, players: nil, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := NewAudio(w, tc.names, tc.players, 0.7)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAudio: %v", err)
			}
			audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
			if len(audio.Play) != len(tc.names) || len(audio.Volume) != len(tc.names) {
				t.Fatalf("flags sized %d/%d", len(audio.Play), len(audio.Volume))
			}
			for _, v := range audio.Volume {
				if v != 0.7 {
					t.Fatalf("volume = %v", v)
				}
			}
			if !ecs.Has(w, e, component.PersistentComponent.Kind()) {
				t.Fatal("audio entity is not persistent")
			}
		})
	}
}

func TestNewBirdsNeedsSpecAndRand(t *testing.T) {
	w := ecs.NewWorld()
	if birds, err := NewBirds(w, nil, rand.New(rand.NewSource(1))); err != nil || birds != nil {
		t.Fatalf("nil spec: %v %v", birds, err)
	}
	if birds, err := NewBirds(w, &prefabs.BirdSpec{Count: 3}, nil); err != nil || birds != nil {
		t.Fatalf("nil rand: %v %v", birds, err)
	}
}

func TestNewRunStateCarriesFireworks(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewRunState(w)
	if err != nil {
		t.Fatalf("NewRunState: %v", err)
	}
	if !ecs.Has(w, e, component.RunStateComponent.Kind()) || !ecs.Has(w, e, component.FireworksComponent.Kind()) {
		t.Fatal("run entity missing components")
	}
}
