package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/common"
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/ecs/entity"
	"github.com/milk9111/memorylane/ecs/system"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
	"github.com/milk9111/memorylane/sfx"
	"github.com/milk9111/memorylane/sim"
)

type screen int

const (
	screenStart screen = iota
	screenPlay
	screenMemory
	screenEnd
)

func (s screen) String() string {
	switch s {
	case screenStart:
		return "start"
	case screenPlay:
		return "play"
	case screenMemory:
		return "memory"
	case screenEnd:
		return "end"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

type GameOptions struct {
	Level   string
	Sprites string
	Debug   bool
	Mute    bool
	Seed    int64
}

type Game struct {
	frames int
	debug  bool

	loop     *sim.Loop
	input    *system.InputSystem
	render   *system.RenderSystem
	provider *assets.Provider
	memories []prefabs.Memory

	screen screen
	memory int

	ui      *screensUI
	hud     *hud
	clip    *memoryClipboard
	watcher *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	layout, err := levels.LoadLayout(levelFile(opts.Level))
	if err != nil {
		return nil, err
	}
	geo := levels.Build(layout, common.GroundY(common.BaseHeight, layout.GroundStrip))

	physics, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load physics: %w", err)
	}
	if err := sim.Validate(geo, physics); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	fireworks, err := prefabs.LoadFireworkSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load fireworks: %w", err)
	}
	birds, err := prefabs.LoadBirdSpec()
	if err != nil {
		log.Printf("game: birds disabled: %v", err)
		birds = nil
	}
	script, err := system.LoadFireworkScript(prefabs.FireworkScriptFile)
	if err != nil {
		log.Printf("game: %v", err)
		script = nil
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	loop, err := sim.New(sim.Config{
		Geometry:  geo,
		Physics:   physics,
		Fireworks: fireworks,
		Birds:     birds,
		Script:    script,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, err
	}

	if !opts.Mute {
		loadSounds(loop.World())
	}

	renderSpec, err := prefabs.LoadRenderSpec()
	if err != nil {
		log.Printf("game: render spec: %v", err)
		renderSpec = nil
	}

	memories, err := prefabs.LoadMemories()
	if err != nil {
		return nil, fmt.Errorf("game: load memories: %w", err)
	}
	if len(memories) < len(geo.HeartRows) {
		log.Printf("game: %d memories for %d hearts", len(memories), len(geo.HeartRows))
	}

	provider := assets.NewProvider(os.DirFS(opts.Sprites), int(geo.Tile))
	render := system.NewRenderSystem(geo, provider, renderSpec, birds)
	render.Debug = opts.Debug

	g := &Game{
		debug:    opts.Debug,
		loop:     loop,
		input:    system.NewInputSystem(system.DefaultTouchButtons(common.BaseWidth, common.BaseHeight)),
		render:   render,
		provider: provider,
		memories: memories,
		clip:     &memoryClipboard{},
	}
	g.hud = newHUD(provider, len(geo.HeartRows))
	g.ui = newScreensUI(g)
	g.show(screenStart)

	if opts.Debug {
		g.watcher, err = prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
			g.watcher = nil
		}
	}
	return g, nil
}

func levelFile(name string) string {
	if name == "" {
		return levels.DefaultLevel
	}
	name = filepath.Base(name)
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

// loadSounds renders the sound bank into a persistent audio entity. Sound
// is optional; failures only log.
func loadSounds(w *ecs.World) {
	spec, err := prefabs.LoadSoundsSpec()
	if err != nil {
		log.Printf("game: sounds disabled: %v", err)
		return
	}
	bank, err := sfx.NewBank(spec)
	if err != nil {
		log.Printf("game: %v", err)
	}
	if bank == nil || len(bank.Names) == 0 {
		return
	}
	if _, err := entity.NewAudio(w, bank.Names, bank.Players, 1); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		g.reload(g.watcher.Drain())
	}

	g.input.Update(g.loop.World())
	if g.input.Last().Action {
		g.action()
	}

	res := g.loop.Tick()
	if res.HeartCollected {
		g.openMemory(res.HeartID)
	}
	if res.LevelComplete {
		g.show(screenEnd)
	}

	// Overlay clicks land after the tick so a Continue click is not also
	// taken as a jump this frame.
	g.ui.Update()
	return nil
}

// action is the space bar: its meaning depends on the screen that is up.
func (g *Game) action() {
	switch g.screen {
	case screenStart:
		g.startRun()
	case screenMemory:
		g.closeMemory()
	case screenEnd:
		g.show(screenStart)
	default:
		g.loop.Jump()
	}
}

func (g *Game) startRun() {
	if err := g.loop.Start(); err != nil {
		log.Printf("game: start: %v", err)
		return
	}
	g.show(screenPlay)
}

func (g *Game) openMemory(id int) {
	g.memory = id
	g.show(screenMemory)
}

func (g *Game) closeMemory() {
	g.loop.Resume()
	g.show(screenPlay)
}

func (g *Game) copyMemory() {
	m, ok := g.currentMemory()
	if !ok {
		return
	}
	if err := g.clip.Copy(m); err != nil {
		log.Printf("game: copy memory: %v", err)
	}
}

func (g *Game) currentMemory() (prefabs.Memory, bool) {
	if g.memory < 0 || g.memory >= len(g.memories) {
		return prefabs.Memory{}, false
	}
	return g.memories[g.memory], true
}

func (g *Game) heartsCollected() int {
	if run := g.loop.Run(); run != nil {
		return run.HeartsCollected
	}
	return 0
}

func (g *Game) show(s screen) {
	g.screen = s
	g.ui.Show(s)
}

// reload applies changed prefab files while running with -debug.
func (g *Game) reload(paths []string) {
	for _, path := range paths {
		name := filepath.Base(path)
		switch name {
		case prefabs.PhysicsFile:
			spec, err := prefabs.LoadPhysicsSpec()
			if err == nil {
				err = g.loop.SetPhysics(spec)
			}
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
		case prefabs.FireworksFile:
			spec, err := prefabs.LoadFireworkSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.loop.SetFireworks(spec, nil)
		case prefabs.RenderFile:
			spec, err := prefabs.LoadRenderSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.render.SetSpec(spec)
		case prefabs.MemoriesFile:
			memories, err := prefabs.LoadMemories()
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.memories = memories
		case prefabs.FireworkScriptFile:
			script, err := system.LoadFireworkScript(name)
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.loop.SetFireworks(nil, script)
		default:
			continue
		}
		log.Printf("game: reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.loop.World()
	g.render.Draw(w, screen)
	g.hud.Draw(screen, g.heartsCollected(), g.screen, g.input)
	g.ui.Draw(screen)

	if g.debug {
		msg := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f    screen: %s", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), g.screen)
		if p, ok := playerDebug(w); ok {
			msg += "\n" + p
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 40)
	}
}

func playerDebug(w *ecs.World) (string, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return "", false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return "", false
	}
	body, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return "", false
	}
	return fmt.Sprintf("player x=%.1f y=%.1f vy=%.2f jumping=%v", tr.X, tr.Y, body.VelocityY, body.Jumping), true
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
