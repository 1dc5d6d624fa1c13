package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

// FireworkSystem spawns bursts above the castle while the show is active and
// integrates every live particle. It ignores RunState entirely so the show
// outlives the run.
type FireworkSystem struct {
	spec   *prefabs.FireworkSpec
	geo    *levels.Geometry
	rng    *rand.Rand
	script *FireworkScript
}

func NewFireworkSystem(geo *levels.Geometry, spec *prefabs.FireworkSpec, rng *rand.Rand, script *FireworkScript) *FireworkSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FireworkSystem{spec: spec, geo: geo, rng: rng, script: script}
}

func (s *FireworkSystem) SetSpec(spec *prefabs.FireworkSpec) {
	if spec != nil {
		s.spec = spec
	}
}

func (s *FireworkSystem) SetScript(script *FireworkScript) {
	s.script = script
}

func (s *FireworkSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil || s.geo == nil {
		return
	}
	_, fw, ok := ecs.FirstValue(w, component.FireworksComponent.Kind())
	if !ok || !fw.Active {
		return
	}

	fw.Timer++
	if fw.Timer == 1 || (s.spec.SpawnInterval > 0 && fw.Timer%s.spec.SpawnInterval == 0) {
		s.burst(w, fw)
	}

	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, p *component.Particle) {
		stepParticle(p, s.spec.Gravity, s.spec.Drag)
		if p.Life <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}

// stepParticle integrates position first, then gravity and drag.
func stepParticle(p *component.Particle, gravity, drag float64) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += gravity
	p.Vel = p.Vel.Mult(drag)
	p.Life--
	p.Bright = 0
	if p.MaxLife > 0 {
		p.Bright = math.Max(0, float64(p.Life)/float64(p.MaxLife))
	}
}

func (s *FireworkSystem) burst(w *ecs.World, fw *component.Fireworks) {
	spec := s.spec
	castle := s.geo.Castle
	r := s.rng.Float64

	origin := cp.Vector{
		X: castle.X + castle.W*(spec.XMinFrac+r()*spec.XRangeFrac),
		Y: s.geo.GroundY - castle.H - spec.YMinOffset - r()*spec.YExtraOffset,
	}
	count := spec.MinParticles + int(r()*float64(spec.ExtraParticles))
	hue := math.Floor(r() * 360)

	if s.script != nil {
		lo, hi := burstBounds(spec)
		c, h, err := s.script.Shape(fw.Bursts, count, hue, lo, hi)
		if err != nil {
			log.Printf("fireworks: script %s: %v", s.script.Path(), err)
		} else {
			count, hue = c, h
		}
	}
	fw.Bursts++

	for i := 0; i < count; i++ {
		angle := (math.Pi*2/float64(count))*float64(i) + (r()-0.5)*spec.AngleJitter
		speed := spec.MinSpeed + r()*spec.ExtraSpeed
		p := &component.Particle{
			Pos:     origin,
			Vel:     cp.ForAngle(angle).Mult(speed),
			Life:    spec.MinLife + int(r()*float64(spec.ExtraLife)),
			MaxLife: spec.MaxLife,
			Size:    spec.MinSize + r()*spec.ExtraSize,
			Bright:  1,
		}
		p.Hue = hue + math.Floor(r()*spec.HueSpread-spec.HueSpread/2)

		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ParticleComponent.Kind(), p); err != nil {
			log.Printf("fireworks: add particle: %v", err)
			return
		}
	}
	w.Events().Push(ecs.Event{Type: ecs.EventFireworkBurst, Data: count})
}
