package system

import (
	"testing"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

// standUnder places the player so its centre matches the heart's centre.
func standUnder(f *fixture, ht *component.Transform, h *component.Heart) {
	f.tr.X = ht.X + h.Width/2 - f.body.Width/2
	f.tr.Y = ht.Y + h.Height/2 + f.body.Height/2
}

func TestPickupRequiresRelease(t *testing.T) {
	f := newFixture(t)
	_, heart, ht := f.heart(0)
	standUnder(f, ht, heart)

	f.pickup.Update(f.w)
	if heart.Collected || f.run.HeartsCollected != 0 {
		t.Fatalf("unreleased heart was collected")
	}

	heart.Released = true
	f.pickup.Update(f.w)
	if !heart.Collected || f.run.HeartsCollected != 1 {
		t.Fatalf("released heart not collected: %+v", heart)
	}

	for i := 0; i < 5; i++ {
		f.pickup.Update(f.w)
	}
	if f.run.HeartsCollected != 1 || f.events(ecs.EventHeartCollected) != 1 {
		t.Fatalf("heart collected more than once: %d", f.run.HeartsCollected)
	}
}

func TestPickupDistance(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"centred", 0, 0, true},
		{"edge x", 27, 0, true},
		{"outside x", 28, 0, false},
		{"edge y", 0, -31, true},
		{"outside y", 0, 32, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, heart, ht := f.heart(0)
			heart.Released = true
			standUnder(f, ht, heart)
			f.tr.X += tt.dx
			f.tr.Y += tt.dy
			f.pickup.Update(f.w)
			if heart.Collected != tt.want {
				t.Fatalf("collected = %v, want %v", heart.Collected, tt.want)
			}
		})
	}
}

func TestPickupAtMostOnePerFrame(t *testing.T) {
	f := newFixture(t)
	_, heart, ht := f.heart(0)
	heart.Released = true

	extra := ecs.CreateEntity(f.w)
	second := &component.Heart{ID: 9, Width: heart.Width, Height: heart.Height, Released: true}
	if err := ecs.Add(f.w, extra, component.HeartComponent.Kind(), second); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := ecs.Add(f.w, extra, component.TransformComponent.Kind(), &component.Transform{X: ht.X, Y: ht.Y}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	standUnder(f, ht, heart)

	f.pickup.Update(f.w)
	if f.run.HeartsCollected != 1 {
		t.Fatalf("first frame collected %d hearts, want 1", f.run.HeartsCollected)
	}
	f.pickup.Update(f.w)
	if f.run.HeartsCollected != 2 || !heart.Collected || !second.Collected {
		t.Fatalf("second frame: count %d, hearts %v %v", f.run.HeartsCollected, heart.Collected, second.Collected)
	}
}

func TestPickupReportsID(t *testing.T) {
	f := newFixture(t)
	_, heart, ht := f.heart(0)
	heart.Released = true
	standUnder(f, ht, heart)
	f.pickup.Update(f.w)

	for _, evt := range f.w.Events().Pending() {
		if evt.Type != ecs.EventHeartCollected {
			continue
		}
		if id, ok := evt.Data.(int); !ok || id != 0 {
			t.Fatalf("event data = %v, want 0", evt.Data)
		}
		return
	}
	t.Fatalf("no heart collected event")
}

func TestHeartPulse(t *testing.T) {
	f := newFixture(t)
	_, heart, _ := f.heart(0)
	pulse := NewHeartPulseSystem(0.08)

	pulse.Update(f.w)
	if heart.Angle != 0 {
		t.Fatalf("hidden heart should not pulse")
	}

	heart.Released = true
	f.run.Paused = true
	pulse.Update(f.w)
	pulse.Update(f.w)
	if heart.Angle != 0.16 {
		t.Fatalf("angle = %v, want 0.16", heart.Angle)
	}

	heart.Collected = true
	pulse.Update(f.w)
	if heart.Angle != 0.16 {
		t.Fatalf("collected heart should stop pulsing")
	}
}
