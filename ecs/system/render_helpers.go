package system

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/memorylane/common"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

// ViewBB is the visible world region for a camera scroll, widened by buffer
// on both horizontal sides.
func ViewBB(scroll, width, buffer float64) cp.BB {
	return cp.BB{L: scroll - buffer, B: math.Inf(-1), R: scroll + width + buffer, T: math.Inf(1)}
}

// Visible reports whether r overlaps view.
func Visible(view cp.BB, r levels.Rect) bool {
	return view.Intersects(r.BB())
}

// RunFrameIndex picks the run-cycle frame for a clock value.
func RunFrameIndex(animTime, divisor, frames int) int {
	if frames <= 0 {
		return 0
	}
	if divisor <= 0 {
		divisor = 1
	}
	return (animTime / divisor) % frames
}

// FlagFrameIndex maps slide progress onto the flag animation frames. The
// flag stays on frame 0 until the pole is reached.
func FlagFrameIndex(run *component.RunState, pole levels.Flagpole, groundY float64, frames int) int {
	if run == nil || frames <= 0 || !run.FlagReached {
		return 0
	}
	end := pole.SlideEnd(groundY)
	if end <= pole.Top {
		return frames - 1
	}
	progress := (run.FlagY - pole.Top) / (end - pole.Top)
	progress = common.Clamp(progress, 0, 1)
	return min(frames-1, int(math.Floor(progress*float64(frames))))
}

// HeartbeatBeat is the double-thump pulse offset for a heart angle: a strong
// beat, a weaker echo, then rest for the remainder of the cycle.
func HeartbeatBeat(angle float64, hb prefabs.HeartbeatSpec) float64 {
	t := math.Mod(angle, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	switch {
	case hb.FirstWindow > 0 && t < hb.FirstWindow:
		return math.Sin(t*math.Pi/hb.FirstWindow) * hb.FirstAmp
	case hb.SecondDuration > 0 && t < hb.SecondEnd:
		return math.Sin((t-hb.FirstWindow)*math.Pi/hb.SecondDuration) * hb.SecondAmp
	}
	return 0
}

// HSLToRGB converts hue in degrees and saturation/lightness in [0,1].
func HSLToRGB(h, s, l float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) uint8 { return uint8(math.Round(common.Clamp(v+m, 0, 1) * 255)) }
	return color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: 0xFF}
}

// FireworkColors returns the core and glow colours of a particle. Brighter
// particles are lighter and more opaque.
func FireworkColors(p *component.Particle, look prefabs.FireworkLook) (core, glow color.NRGBA) {
	alpha := p.Bright*look.AlphaRange + look.AlphaMin
	lightness := math.Round(look.BaseLightness+p.Bright*look.BrightLightness) / 100
	core = HSLToRGB(p.Hue, 1, lightness)
	glow = core
	core.A = uint8(math.Round(common.Clamp(alpha, 0, 1) * 255))
	glow.A = uint8(math.Round(common.Clamp(alpha*look.GlowAlpha, 0, 1) * 255))
	return core, glow
}
