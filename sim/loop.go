// Package sim drives one run of the game: it owns the world, resets it on
// start, and advances it one tick at a time for whichever host renders it.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/ecs/entity"
	"github.com/milk9111/memorylane/ecs/system"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
)

var ErrNoGeometry = errors.New("sim: geometry is required")

type Config struct {
	Geometry  *levels.Geometry
	Physics   *prefabs.PhysicsSpec
	Fireworks *prefabs.FireworkSpec
	Birds     *prefabs.BirdSpec
	Script    *system.FireworkScript
	Rand      *rand.Rand
}

// StepResult is what a tick tells the host: whether the level finished and
// which heart, if any, was picked up.
type StepResult struct {
	LevelComplete  bool
	HeartID        int
	HeartCollected bool
}

// Loop owns the world and the two system groups. The step group only runs
// while the run is live and unpaused; the ambient group always runs.
type Loop struct {
	cfg   Config
	world *ecs.World
	rng   *rand.Rand

	physics   *system.PlayerPhysicsSystem
	pickup    *system.HeartPickupSystem
	fireworks *system.FireworkSystem
	pulse     *system.HeartPulseSystem

	step    *ecs.Scheduler
	ambient *ecs.Scheduler

	handle     uint64
	generation uint64
}

func New(cfg Config) (*Loop, error) {
	if cfg.Geometry == nil {
		return nil, ErrNoGeometry
	}
	if cfg.Physics == nil {
		spec, err := prefabs.LoadPhysicsSpec()
		if err != nil {
			return nil, fmt.Errorf("sim: load physics: %w", err)
		}
		cfg.Physics = spec
	}
	if err := Validate(cfg.Geometry, cfg.Physics); err != nil {
		return nil, fmt.Errorf("sim: new: %w", err)
	}
	if cfg.Fireworks == nil {
		spec, err := prefabs.LoadFireworkSpec()
		if err != nil {
			return nil, fmt.Errorf("sim: load fireworks: %w", err)
		}
		cfg.Fireworks = spec
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}

	l := &Loop{
		cfg:       cfg,
		world:     ecs.NewWorld(),
		rng:       cfg.Rand,
		physics:   system.NewPlayerPhysicsSystem(cfg.Geometry, cfg.Physics),
		pickup:    system.NewHeartPickupSystem(cfg.Physics),
		fireworks: system.NewFireworkSystem(cfg.Geometry, cfg.Fireworks, cfg.Rand, cfg.Script),
		pulse:     system.NewHeartPulseSystem(cfg.Physics.Heart.HeartbeatSpeed),
	}

	l.step = ecs.NewGuardedScheduler(live, l.physics, system.NewCameraSystem(), l.pickup)

	l.ambient = ecs.NewScheduler()
	l.ambient.Add(l.fireworks)
	l.ambient.Add(l.pulse)
	if cfg.Birds != nil {
		l.ambient.Add(system.NewBirdSystem(cfg.Birds))
	}
	l.ambient.Add(system.NewAudioSystem(nil))

	if err := l.reset(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loop) World() *ecs.World { return l.world }

func (l *Loop) Geometry() *levels.Geometry { return l.cfg.Geometry }

// Scheduled reports whether a loop instance is live.
func (l *Loop) Scheduled() bool { return l.handle != 0 }

// Handle identifies the live loop instance; each Start issues a new one.
func (l *Loop) Handle() uint64 { return l.handle }

// Cancel clears the scheduled loop without touching state.
func (l *Loop) Cancel() {
	l.handle = 0
}

// Start cancels any live loop, resets the run and schedules a fresh loop.
func (l *Loop) Start() error {
	l.Cancel()
	if err := l.reset(); err != nil {
		return err
	}
	if run := l.Run(); run != nil {
		run.Running = true
	}
	l.generation++
	l.handle = l.generation
	return nil
}

func (l *Loop) reset() error {
	w := l.world
	for _, e := range ecs.Entities(w) {
		if ecs.Has(w, e, component.PersistentComponent.Kind()) {
			continue
		}
		ecs.DestroyEntity(w, e)
	}
	w.Events().Reset()

	if _, err := entity.NewRunState(w); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if _, err := entity.NewPlayer(w, l.cfg.Geometry, l.cfg.Physics); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if _, err := entity.NewCamera(w, l.cfg.Physics.CameraLead); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if _, err := entity.NewHearts(w, l.cfg.Geometry, l.cfg.Physics, l.rng); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if l.cfg.Birds != nil {
		if _, err := entity.NewBirds(w, l.cfg.Birds, l.rng); err != nil {
			return fmt.Errorf("sim: reset: %w", err)
		}
	}
	return nil
}

// live reports whether the run is started and no overlay holds it.
func live(w *ecs.World) bool {
	_, run, ok := ecs.FirstValue(w, component.RunStateComponent.Kind())
	return ok && run.Running && !run.Paused
}

// Run returns the run state singleton.
func (l *Loop) Run() *component.RunState {
	_, run, ok := ecs.FirstValue(l.world, component.RunStateComponent.Kind())
	if !ok {
		return nil
	}
	return run
}

func (l *Loop) fireworksActive() bool {
	_, fw, ok := ecs.FirstValue(l.world, component.FireworksComponent.Kind())
	return ok && fw.Active
}

// Tick advances one frame. It does nothing unless a loop is scheduled.
func (l *Loop) Tick() StepResult {
	var res StepResult
	if !l.Scheduled() {
		return res
	}
	w := l.world
	run := l.Run()
	if run == nil {
		l.Cancel()
		return res
	}

	jump := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		if in.JumpPressed {
			jump = true
			in.JumpPressed = false
		}
	})
	if jump {
		system.TryJump(w, l.cfg.Physics.JumpStrength)
	}

	l.step.Update(w)
	l.ambient.Update(w)

	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventLevelComplete:
			res.LevelComplete = true
		case ecs.EventHeartCollected:
			if id, ok := evt.Data.(int); ok && !res.HeartCollected {
				res.HeartCollected = true
				res.HeartID = id
			}
		}
	}
	if res.HeartCollected {
		run.Paused = true
	}

	if !run.Running && !l.fireworksActive() {
		l.Cancel()
	}
	return res
}

// Iterate runs one full frame for hosts that draw and simulate in the same
// callback: background, tick, foreground.
func (l *Loop) Iterate(background, foreground func(w *ecs.World)) StepResult {
	if background != nil {
		background(l.world)
	}
	res := l.Tick()
	if foreground != nil {
		foreground(l.world)
	}
	return res
}

// Pause holds the step group while an overlay is open.
func (l *Loop) Pause() {
	if run := l.Run(); run != nil {
		run.Paused = true
	}
}

func (l *Loop) Resume() {
	if run := l.Run(); run != nil {
		run.Paused = false
	}
}

// SetIntent applies host input to the player.
func (l *Loop) SetIntent(in system.Intent) {
	in.Apply(l.world)
}

// Jump queues a jump for the next tick.
func (l *Loop) Jump() {
	system.RequestJump(l.world)
}

// SetPhysics swaps physics tuning in place. Geometry is unchanged.
func (l *Loop) SetPhysics(spec *prefabs.PhysicsSpec) error {
	if spec == nil {
		return nil
	}
	if err := levels.Validate(l.cfg.Geometry, tuning(spec)); err != nil {
		return fmt.Errorf("sim: set physics: %w", err)
	}
	l.cfg.Physics = spec
	l.physics.SetSpec(spec)
	l.pickup.SetSpec(spec)
	l.pulse.SetSpeed(spec.Heart.HeartbeatSpeed)
	return nil
}

func (l *Loop) SetFireworks(spec *prefabs.FireworkSpec, script *system.FireworkScript) {
	if spec != nil {
		l.cfg.Fireworks = spec
		l.fireworks.SetSpec(spec)
	}
	if script != nil {
		l.cfg.Script = script
		l.fireworks.SetScript(script)
	}
}

func tuning(spec *prefabs.PhysicsSpec) levels.Tuning {
	return levels.Tuning{
		Gravity:      spec.Gravity,
		JumpStrength: spec.JumpStrength,
		LandAbove:    spec.LandAbove,
		LandBelow:    spec.LandBelow,
	}
}

// Validate checks the physics tuning against the level.
func Validate(geo *levels.Geometry, spec *prefabs.PhysicsSpec) error {
	return levels.Validate(geo, tuning(spec))
}
