package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/memorylane/prefabs"
)

// FireworkScript lets a tengo script reshape each burst. The script sees
// burst, count and hue as globals and may reassign count and hue.
type FireworkScript struct {
	path     string
	compiled *tengo.Compiled
}

// LoadFireworkScript compiles the named script from prefabs/scripts.
func LoadFireworkScript(name string) (*FireworkScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("fireworks: load script %s: %w", name, err)
	}
	fs, err := NewFireworkScript(src)
	if err != nil {
		return nil, fmt.Errorf("fireworks: compile script %s: %w", name, err)
	}
	fs.path = name
	return fs, nil
}

func NewFireworkScript(src []byte) (*FireworkScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("burst", 0)
	_ = script.Add("count", 0)
	_ = script.Add("hue", 0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &FireworkScript{compiled: compiled}, nil
}

// Path is the script name this was loaded from, if any.
func (f *FireworkScript) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// burstBounds is the inclusive particle count range a burst may have:
// MinParticles up to MinParticles+ExtraParticles-1.
func burstBounds(spec *prefabs.FireworkSpec) (int, int) {
	lo := max(spec.MinParticles, 1)
	return lo, lo + max(spec.ExtraParticles-1, 0)
}

// Shape runs the script for one burst. The returned count is clamped to
// [lo, hi] and the hue wrapped into [0, 360). On error the inputs are
// returned unchanged alongside the error.
func (f *FireworkScript) Shape(burst, count int, hue float64, lo, hi int) (int, float64, error) {
	if f == nil || f.compiled == nil {
		return count, hue, nil
	}
	if err := f.compiled.Set("burst", burst); err != nil {
		return count, hue, err
	}
	if err := f.compiled.Set("count", count); err != nil {
		return count, hue, err
	}
	if err := f.compiled.Set("hue", int(hue)); err != nil {
		return count, hue, err
	}
	if err := f.compiled.Run(); err != nil {
		return count, hue, fmt.Errorf("fireworks: run script: %w", err)
	}

	outCount := min(max(f.compiled.Get("count").Int(), lo), hi)
	outHue := math.Mod(f.compiled.Get("hue").Float(), 360)
	if outHue < 0 {
		outHue += 360
	}
	return outCount, outHue, nil
}
