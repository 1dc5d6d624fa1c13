package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    color.NRGBA
	}{
		{"red", 0, 1, 0.5, color.NRGBA{255, 0, 0, 255}},
		{"green", 120, 1, 0.5, color.NRGBA{0, 255, 0, 255}},
		{"blue", 240, 1, 0.5, color.NRGBA{0, 0, 255, 255}},
		{"wrapped yellow", 420, 1, 0.5, color.NRGBA{255, 255, 0, 255}},
		{"negative hue", -120, 1, 0.5, color.NRGBA{0, 0, 255, 255}},
		{"white", 200, 1, 1, color.NRGBA{255, 255, 255, 255}},
		{"black", 200, 1, 0, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Fatalf("HSLToRGB(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHeartbeatBeat(t *testing.T) {
	hb := prefabs.HeartbeatSpec{FirstWindow: 0.5, FirstAmp: 0.22, SecondEnd: 1.2, SecondDuration: 0.7, SecondAmp: 0.13}
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"start", 0, 0},
		{"first peak", 0.25, 0.22},
		{"second peak", 0.85, 0.13},
		{"rest", 3, 0},
		{"next cycle", 2*math.Pi + 0.25, 0.22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeartbeatBeat(tt.angle, hb); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("HeartbeatBeat(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestFlagFrameIndex(t *testing.T) {
	pole := levels.Flagpole{X: 9240, Top: 340, Height: 380, FlagHeight: 44}
	const groundY = 720

	tests := []struct {
		name string
		run  *component.RunState
		want int
	}{
		{"nil run", nil, 0},
		{"not reached", &component.RunState{FlagY: 600}, 0},
		{"top", &component.RunState{FlagReached: true, FlagSliding: true, FlagY: 340}, 0},
		{"halfway", &component.RunState{FlagReached: true, FlagSliding: true, FlagY: 508}, 2},
		{"bottom", &component.RunState{FlagReached: true, FlagY: 676}, 4},
		{"past bottom", &component.RunState{FlagReached: true, FlagY: 800}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlagFrameIndex(tt.run, pole, groundY, 5); got != tt.want {
				t.Fatalf("FlagFrameIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRunFrameIndex(t *testing.T) {
	tests := []struct {
		anim, div, frames, want int
	}{
		{0, 8, 4, 0},
		{7, 8, 4, 0},
		{8, 8, 4, 1},
		{33, 8, 4, 0},
		{5, 0, 4, 1},
		{5, 8, 0, 0},
	}
	for _, tt := range tests {
		if got := RunFrameIndex(tt.anim, tt.div, tt.frames); got != tt.want {
			t.Fatalf("RunFrameIndex(%d,%d,%d) = %d, want %d", tt.anim, tt.div, tt.frames, got, tt.want)
		}
	}
}

func TestVisible(t *testing.T) {
	view := ViewBB(100, 1280, 0)
	tests := []struct {
		name string
		r    levels.Rect
		want bool
	}{
		{"left of view", levels.Rect{X: 0, W: 50, H: 10}, false},
		{"straddles left edge", levels.Rect{X: 80, W: 40, H: 10}, true},
		{"inside", levels.Rect{X: 500, Y: 700, W: 40, H: 40}, true},
		{"right of view", levels.Rect{X: 1381, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(view, tt.r); got != tt.want {
				t.Fatalf("Visible(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}

	buffered := ViewBB(100, 1280, 50)
	if !Visible(buffered, levels.Rect{X: 1381, W: 10, H: 10}) {
		t.Fatalf("buffer should widen the view")
	}
}

func TestFireworkColors(t *testing.T) {
	look := prefabs.FireworkLook{AlphaMin: 0.1, AlphaRange: 0.9, BaseLightness: 50, BrightLightness: 30, GlowAlpha: 0.3, GlowSize: 2.5}

	core, glow := FireworkColors(&component.Particle{Hue: 0, Bright: 1}, look)
	if core.A != 255 || glow.A != 77 {
		t.Fatalf("bright alphas = %d/%d, want 255/77", core.A, glow.A)
	}
	if core.R != 255 || core.G != core.B {
		t.Fatalf("hue 0 should be a light red, got %v", core)
	}

	dim, _ := FireworkColors(&component.Particle{Hue: 0, Bright: 0}, look)
	if dim.A != 26 {
		t.Fatalf("dim alpha = %d, want 26", dim.A)
	}
	if dim.G >= core.G {
		t.Fatalf("dim particle should be darker: %v vs %v", dim, core)
	}
}
