package common

import "testing"

func TestLerpAndClamp(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"lerp start", Lerp(2, 6, 0), 2},
		{"lerp mid", Lerp(2, 6, 0.5), 4},
		{"lerp end", Lerp(2, 6, 1), 6},
		{"clamp low", Clamp(-1, 0, 1), 0},
		{"clamp high", Clamp(3, 0, 1), 1},
		{"clamp inside", Clamp(0.25, 0, 1), 0.25},
		{"ground line", GroundY(BaseHeight, 80), 720},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
