package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/ecs/entity"
	"github.com/milk9111/memorylane/prefabs"
)

func TestBirdScreenX(t *testing.T) {
	tests := []struct {
		name                         string
		x, scroll, parallax, span, m float64
		want                         float64
	}{
		{name: "no scroll", x: 100, span: 1000, m: 50, want: 100},
		{name: "parallax halves scroll", x: 500, scroll: 400, parallax: 0.5, span: 1000, m: 50, want: 300},
		{name: "wraps past left margin", x: 10, scroll: 200, parallax: 0.5, span: 1000, m: 50, want: 910},
		{name: "wraps past span", x: 1200, span: 1000, m: 50, want: 200},
		{name: "inside left margin stays", x: -40, span: 1000, m: 50, want: -40},
		{name: "zero span passes through", x: 10, scroll: 200, parallax: 0.5, want: -90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BirdScreenX(tc.x, tc.scroll, tc.parallax, tc.span, tc.m)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("BirdScreenX = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBirdSystemDriftsAndWraps(t *testing.T) {
	spec := &prefabs.BirdSpec{Count: 2, Spacing: 100, BobFreq: 0.5}
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	bird := &component.Bird{BaseY: 150, Drift: 3, FlapSpeed: 0.1, BobAmp: 4}
	tr := &component.Transform{X: 2, Y: 150}
	if err := ecs.Add(w, e, component.BirdComponent.Kind(), bird); err != nil {
		t.Fatalf("add bird: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}

	sys := NewBirdSystem(spec)
	if sys.Span() != 200 {
		t.Fatalf("span = %v, want 200", sys.Span())
	}
	sys.Update(w)

	if math.Abs(tr.X-199) > 1e-9 {
		t.Fatalf("x = %v, want 199 after wrap", tr.X)
	}
	if math.Abs(bird.FlapPhase-0.1) > 1e-9 || math.Abs(bird.BobPhase-0.5) > 1e-9 {
		t.Fatalf("phases = %v/%v", bird.FlapPhase, bird.BobPhase)
	}
	if want := 150 + math.Sin(0.5)*4; math.Abs(tr.Y-want) > 1e-9 {
		t.Fatalf("y = %v, want %v", tr.Y, want)
	}
}

func TestBirdSystemNilSpec(t *testing.T) {
	sys := NewBirdSystem(nil)
	if sys.Span() != 0 {
		t.Fatal("nil spec span")
	}
	sys.Update(ecs.NewWorld())
}

func TestEmbeddedFlockStaysInBand(t *testing.T) {
	spec, err := prefabs.LoadBirdSpec()
	if err != nil {
		t.Fatalf("load birds: %v", err)
	}
	w := ecs.NewWorld()
	birds, err := entity.NewBirds(w, spec, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("new birds: %v", err)
	}
	if len(birds) != spec.Count {
		t.Fatalf("birds = %d, want %d", len(birds), spec.Count)
	}

	sys := NewBirdSystem(spec)
	for i := 0; i < 600; i++ {
		sys.Update(w)
	}
	span := sys.Span()
	ecs.ForEach2(w, component.BirdComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Bird, tr *component.Transform) {
		if tr.X < 0 || tr.X >= span {
			t.Errorf("x = %v outside [0,%v)", tr.X, span)
		}
		if math.Abs(tr.Y-b.BaseY) > b.BobAmp+1e-9 {
			t.Errorf("y = %v drifted from base %v by more than %v", tr.Y, b.BaseY, b.BobAmp)
		}
		if b.BaseY < spec.YMin || b.BaseY > spec.YMin+spec.YRange {
			t.Errorf("base y %v outside band", b.BaseY)
		}
	})
}
