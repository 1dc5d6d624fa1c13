package main

import (
	"image"
	"testing"

	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/prefabs"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		name       string
		w, h, box  int
		wantScaled float64
	}{
		{name: "small frame scales up", w: 16, h: 16, box: 448, wantScaled: 28},
		{name: "tall frame limited by height", w: 24, h: 168, box: 448, wantScaled: 2},
		{name: "larger than box stays 1", w: 600, h: 600, box: 448, wantScaled: 1},
		{name: "empty frame", w: 0, h: 10, box: 448, wantScaled: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fitScale(tc.w, tc.h, tc.box); got != tc.wantScaled {
				t.Fatalf("fitScale = %v, want %v", got, tc.wantScaled)
			}
		})
	}
}

func TestFrameRects(t *testing.T) {
	spec := &prefabs.RenderSpec{
		RunFrames:           []prefabs.RectSpec{{X: 10, Y: 20, W: 16, H: 16}},
		RunFramesFromBottom: true,
		FlagFrames:          []prefabs.RectSpec{{X: 1, Y: 2, W: 3, H: 4}, {X: 5, Y: 6, W: 7, H: 8}},
	}

	run := frameRects("run", spec, 100)
	if len(run) != 1 || run[0] != image.Rect(10, 64, 26, 80) {
		t.Fatalf("run rects = %v", run)
	}

	spec.RunFramesFromBottom = false
	if run := frameRects("run", spec, 100); run[0] != image.Rect(10, 20, 26, 36) {
		t.Fatalf("top-measured run rect = %v", run[0])
	}

	if flag := frameRects("flag", spec, 0); len(flag) != 2 || flag[1] != image.Rect(5, 6, 12, 14) {
		t.Fatalf("flag rects = %v", flag)
	}

	fallback := frameRects("fallback", spec, 0)
	if len(fallback) != assets.FallbackFrameCount {
		t.Fatalf("fallback frames = %d", len(fallback))
	}
	if last := fallback[len(fallback)-1]; last.Max.X != assets.FallbackSheetWidth {
		t.Fatalf("last fallback frame ends at %d, want %d", last.Max.X, assets.FallbackSheetWidth)
	}
}

func TestSheetFor(t *testing.T) {
	tests := []struct {
		set     string
		want    string
		wantErr bool
	}{
		{set: "run", want: assets.Character},
		{set: "fallback", want: assets.Character},
		{set: "flag", want: assets.Tiles},
		{set: "idle", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.set, func(t *testing.T) {
			got, err := sheetFor(tc.set)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("sheetFor(%q) = %q, want %q", tc.set, got, tc.want)
			}
		})
	}
}
