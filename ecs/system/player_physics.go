package system

import (
	"math"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

// PlayerPhysicsSystem advances the player one frame against the static level:
// flag sequence, horizontal intent, gravity, landing, solid push-out and
// question block head bumps. The order of those stages matters; later
// stages may override what earlier ones resolved.
type PlayerPhysicsSystem struct {
	geo  *levels.Geometry
	spec *prefabs.PhysicsSpec
}

func NewPlayerPhysicsSystem(geo *levels.Geometry, spec *prefabs.PhysicsSpec) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{geo: geo, spec: spec}
}

// SetSpec swaps tuning in place, used by hot reload.
func (s *PlayerPhysicsSystem) SetSpec(spec *prefabs.PhysicsSpec) {
	if spec != nil {
		s.spec = spec
	}
}

func (s *PlayerPhysicsSystem) Update(w *ecs.World) {
	s.Step(w)
}

// Step runs one frame and reports whether the flag slide finished on it.
func (s *PlayerPhysicsSystem) Step(w *ecs.World) bool {
	if w == nil || s.geo == nil || s.spec == nil {
		return false
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	body, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	_, run, ok := ecs.FirstValue(w, component.RunStateComponent.Kind())
	if !ok {
		return false
	}

	done := s.step(w, player, tr, body, run)
	run.AnimTime++
	return done
}

func (s *PlayerPhysicsSystem) step(w *ecs.World, player ecs.Entity, tr *component.Transform, body *component.Player, run *component.RunState) bool {
	pole := s.geo.Flagpole
	groundY := s.geo.GroundY

	if run.FlagSliding {
		run.FlagY += s.spec.FlagSlideSpeed
		tr.X = pole.X - pole.PlayerOffsetX
		tr.Y = run.FlagY - body.Height + pole.PlayerOffsetY
		if run.FlagY >= pole.SlideEnd(groundY) {
			run.FlagSliding = false
			run.Running = false
			run.Completed = true
			w.Events().Push(ecs.Event{Type: ecs.EventLevelComplete})
			return true
		}
		return false
	}

	if run.FlagReached {
		return false
	}

	if tr.X+body.Width >= pole.X && tr.X <= pole.X+pole.CollisionWidth+pole.HitboxExtend {
		run.FlagReached = true
		run.FlagSliding = true
		run.FlagY = pole.Top
		if _, fw, ok := ecs.FirstValue(w, component.FireworksComponent.Kind()); ok {
			fw.Active = true
			fw.Timer = 0
		}
		tr.X = pole.X - pole.PlayerOffsetX
		body.VelocityY = 0
		w.Events().Push(ecs.Event{Type: ecs.EventFlagReached})
		return false
	}

	var in component.Input
	if p, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		in = *p
	}
	switch {
	case in.MoveRight && !in.MoveLeft:
		tr.X += s.spec.ScrollSpeed
		body.Facing = 1
	case in.MoveLeft && !in.MoveRight:
		tr.X -= s.spec.ScrollSpeed
		body.Facing = -1
	}
	tr.X = math.Max(s.geo.MinX, tr.X)

	body.VelocityY += s.spec.Gravity
	tr.Y += body.VelocityY

	// The box is sampled once; every check below uses the post-gravity
	// position even after an earlier check moved the player.
	box := playerBox{
		foot:  tr.Y,
		head:  tr.Y - body.Height,
		left:  tr.X,
		right: tr.X + body.Width,
	}

	if body.VelocityY >= 0 {
		s.land(tr, body, box)
	}
	s.pushOut(tr, body, box)
	if body.VelocityY < 0 {
		s.headBump(w, tr, body, box)
	}
	return false
}

type playerBox struct {
	foot, head, left, right float64
}

func (s *PlayerPhysicsSystem) standing(foot, top float64) bool {
	return foot >= top-s.spec.LandAbove && foot <= top+s.spec.LandBelow
}

func (s *PlayerPhysicsSystem) land(tr *component.Transform, body *component.Player, box playerBox) {
	if box.foot >= s.geo.GroundY {
		tr.Y = s.geo.GroundY
		body.VelocityY = 0
		body.Jumping = false
		return
	}

	for _, p := range s.geo.Platforms {
		thickness := p.H
		if thickness == 0 {
			thickness = 1
		}
		if box.right > p.X && box.left < p.Right() &&
			box.head < p.Y+thickness &&
			s.standing(box.foot, p.Y) {
			tr.Y = p.Y
			body.VelocityY = 0
			body.Jumping = false
		}
	}
}

// pushOut moves the player to the nearer side of any pipe or stair block it
// overlaps without standing on.
func (s *PlayerPhysicsSystem) pushOut(tr *component.Transform, body *component.Player, box playerBox) {
	for _, solid := range s.geo.Solids {
		overlapping := box.right > solid.X && box.left < solid.Right() &&
			box.head < solid.Bottom() && box.foot > solid.Y
		if !overlapping || s.standing(box.foot, solid.Y) {
			continue
		}
		if tr.X+body.Width*0.5 < solid.X+solid.W*0.5 {
			tr.X = solid.X - body.Width
		} else {
			tr.X = solid.Right()
		}
	}
}

func (s *PlayerPhysicsSystem) headBump(w *ecs.World, tr *component.Transform, body *component.Player, box playerBox) {
	ecs.ForEach3(w, component.QuestionBlockComponent.Kind(), component.HeartComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, qb *component.QuestionBlock, heart *component.Heart, ht *component.Transform) {
			if qb.Hit {
				return
			}
			bottom := qb.Top + qb.Size
			if box.head > bottom || box.head < bottom-s.spec.HeadHit {
				return
			}
			if box.right <= qb.X || box.left >= qb.X+qb.Size {
				return
			}

			tr.Y = bottom + body.Height + s.spec.HeadBouncePush
			body.VelocityY = 0
			qb.Hit = true
			heart.Released = true
			ht.Y = qb.Top - heart.Height - s.spec.Heart.ReleaseGap
			w.Events().Push(ecs.Event{Type: ecs.EventBlockHit, Data: qb.Index})
		})
}
