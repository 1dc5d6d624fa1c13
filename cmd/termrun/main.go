// Command termrun plays the level in a terminal. It drives the same loop as
// the windowed game and draws it with character cells.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/memorylane/common"
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/entity"
	"github.com/milk9111/memorylane/ecs/system"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
	"github.com/milk9111/memorylane/sim"
)

// Terminals only report key presses, so a direction stays held for this
// many ticks after its last repeat.
const holdTicks = 8

type mode int

const (
	modeStart mode = iota
	modePlay
	modeMemory
	modeEnd
)

type app struct {
	screen tcell.Screen
	loop   *sim.Loop
	scene  scene
	view   view

	memories []prefabs.Memory
	mode     mode
	memory   int
	total    int

	left, right int
	audio       bool
}

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/")
	mute := flag.Bool("mute", false, "disable sound effects")
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "termrun: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	a, err := newApp(*levelName, *seed, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}

func newApp(levelName string, seed int64, mute bool) (*app, error) {
	layout, err := levels.LoadLayout(levelName)
	if err != nil {
		return nil, err
	}
	geo := levels.Build(layout, common.GroundY(common.BaseHeight, layout.GroundStrip))

	physics, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return nil, fmt.Errorf("termrun: load physics: %w", err)
	}
	if err := sim.Validate(geo, physics); err != nil {
		return nil, fmt.Errorf("termrun: %w", err)
	}
	birds, err := prefabs.LoadBirdSpec()
	if err != nil {
		log.Printf("termrun: birds disabled: %v", err)
		birds = nil
	}
	script, err := system.LoadFireworkScript(prefabs.FireworkScriptFile)
	if err != nil {
		log.Printf("termrun: %v", err)
		script = nil
	}
	memories, err := prefabs.LoadMemories()
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	loop, err := sim.New(sim.Config{
		Geometry: geo,
		Physics:  physics,
		Birds:    birds,
		Script:   script,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{
		screen:   screen,
		loop:     loop,
		scene:    scene{geo: geo},
		memories: memories,
		total:    len(geo.HeartRows),
	}
	if birds != nil {
		a.scene.parallax = birds.Parallax
		a.scene.span = system.NewBirdSystem(birds).Span()
	}
	a.resize()

	if !mute {
		a.openAudio(loop.World())
	}
	return a, nil
}

// openAudio is non-fatal; the game runs silently without a speaker.
func (a *app) openAudio(w *ecs.World) {
	spec, err := prefabs.LoadSoundsSpec()
	if err != nil {
		log.Printf("termrun: sounds disabled: %v", err)
		return
	}
	names, players, err := openSpeaker(spec)
	if err != nil {
		log.Printf("termrun: %v", err)
	}
	if len(names) == 0 {
		return
	}
	a.audio = true
	if _, err := entity.NewAudio(w, names, players, 1); err != nil {
		log.Printf("termrun: %v", err)
	}
}

func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.view = newView(cols, rows, common.BaseHeight)
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// eventSource is the part of tcell.Screen the poller reads from.
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards terminal events until the screen is finalised or done
// is closed, so it never blocks on a loop that has already returned.
func pollEvents(src eventSource, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.left, a.right = holdTicks, 0
		case tcell.KeyRight:
			a.right, a.left = holdTicks, 0
		case tcell.KeyUp:
			a.jump()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				a.action()
			case 'a', 'A':
				a.left, a.right = holdTicks, 0
			case 'd', 'D':
				a.right, a.left = holdTicks, 0
			case 'q':
				return false
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			a.jump()
		}
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

// action is the space bar, which depends on the current mode.
func (a *app) action() {
	switch a.mode {
	case modeStart:
		if err := a.loop.Start(); err != nil {
			log.Printf("termrun: start: %v", err)
			return
		}
		a.left, a.right = 0, 0
		a.mode = modePlay
	case modeMemory:
		a.loop.Resume()
		a.mode = modePlay
	case modeEnd:
		a.mode = modeStart
	default:
		a.loop.Jump()
	}
}

func (a *app) jump() {
	if a.mode == modePlay {
		a.loop.Jump()
	}
}

func (a *app) frame() {
	a.loop.SetIntent(system.Intent{Left: a.left > 0, Right: a.right > 0})
	a.left = max(a.left-1, 0)
	a.right = max(a.right-1, 0)

	res := a.loop.Iterate(
		func(w *ecs.World) {
			a.view.scroll = cameraScroll(w)
			a.scene.background(a.screen, a.view, w)
		},
		func(w *ecs.World) {
			a.view.scroll = cameraScroll(w)
			a.scene.foreground(a.screen, a.view, w)
		},
	)
	if res.HeartCollected {
		a.memory = res.HeartID
		a.mode = modeMemory
	}
	if res.LevelComplete {
		a.mode = modeEnd
	}

	a.drawOverlay()
	a.screen.Show()
}

func (a *app) hearts() int {
	if run := a.loop.Run(); run != nil {
		return run.HeartsCollected
	}
	return 0
}

func (a *app) drawOverlay() {
	a.view.text(a.screen, 1, 0, fmt.Sprintf(" ♥ %d / %d ", a.hearts(), a.total), styleTextBold)

	width := max(a.view.cols/2, 20)
	switch a.mode {
	case modeStart:
		a.view.box(a.screen, []string{
			"Memory Lane",
			"",
			"Run right, bump the ? blocks and catch every heart.",
			"",
			"space: start   arrows / a d: move   up / click: jump   esc: quit",
		})
	case modeMemory:
		lines := []string{"A memory"}
		if a.memory >= 0 && a.memory < len(a.memories) {
			m := a.memories[a.memory]
			lines = []string{m.Title, ""}
			lines = append(lines, wrap(m.Text, width)...)
		}
		lines = append(lines, "", "space: continue")
		a.view.box(a.screen, lines)
	case modeEnd:
		a.view.box(a.screen, []string{
			"You made it to the castle!",
			fmt.Sprintf("%d / %d memories collected", a.hearts(), a.total),
			"",
			"space: play again",
		})
	}
}

func (a *app) cleanup() {
	if a.audio {
		speaker.Close()
	}
	a.screen.Fini()
}
