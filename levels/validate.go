package levels

import (
	"errors"
	"fmt"
	"math"
)

var ErrTunneling = errors.New("levels: fall speed exceeds landing window")

// Tuning is the subset of the physics constants that bounds landing.
type Tuning struct {
	Gravity      float64
	JumpStrength float64
	LandAbove    float64
	LandBelow    float64
}

// MaxFallSpeed is the per-frame displacement reached by jumping from the
// highest platform and dropping to the ground line, integrated the same way
// the player is.
func MaxFallSpeed(g *Geometry, t Tuning) float64 {
	if t.Gravity <= 0 {
		return math.Inf(1)
	}
	top := g.GroundY
	for _, p := range g.Platforms {
		top = math.Min(top, p.Y)
	}

	var y, v float64
	v = t.JumpStrength
	for v < 0 {
		v += t.Gravity
		y += v
	}
	drop := g.GroundY - (top + y)

	var fallen float64
	v = 0
	for fallen < drop {
		v += t.Gravity
		fallen += v
	}
	return v
}

// Validate rejects tunings where a falling player could step over the whole
// landing band of a platform in one frame.
func Validate(g *Geometry, t Tuning) error {
	window := t.LandAbove + t.LandBelow
	if speed := MaxFallSpeed(g, t); speed > window {
		return fmt.Errorf("%w: %.2f > %.2f", ErrTunneling, speed, window)
	}
	return nil
}
