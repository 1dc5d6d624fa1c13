package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

type TouchButtonKind int

const (
	TouchNone TouchButtonKind = iota
	TouchLeft
	TouchRight
	TouchJump
)

// TouchButton is an on-screen control in logical screen coordinates.
type TouchButton struct {
	Kind  TouchButtonKind
	Label string
	X     float64
	Y     float64
	W     float64
	H     float64
}

func (b TouchButton) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// DefaultTouchButtons lays out left/right in the bottom-left corner and
// jump in the bottom-right.
func DefaultTouchButtons(screenW, screenH float64) []TouchButton {
	const size, margin, gap = 96.0, 24.0, 16.0
	y := screenH - size - margin
	return []TouchButton{
		{Kind: TouchLeft, Label: "<", X: margin, Y: y, W: size, H: size},
		{Kind: TouchRight, Label: ">", X: margin + size + gap, Y: y, W: size, H: size},
		{Kind: TouchJump, Label: "^", X: screenW - size - margin, Y: y, W: size, H: size},
	}
}

// HitTouchButton returns the button under (x, y), or TouchNone.
func HitTouchButton(buttons []TouchButton, x, y float64) TouchButtonKind {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Kind
		}
	}
	return TouchNone
}

// Intent is one frame of raw input before it is written to the world.
type Intent struct {
	Left  bool
	Right bool
	// Jump is a pointer or button jump; the space bar is reported as Action
	// because its meaning depends on which screen is up.
	Jump   bool
	Action bool
}

// Apply writes the intent into every Input component. Jump edges accumulate
// until the loop consumes them.
func (in Intent) Apply(w *ecs.World) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveLeft = in.Left
		input.MoveRight = in.Right
		input.JumpPressed = input.JumpPressed || in.Jump
	})
}

// InputSystem polls keyboard, mouse, touch and gamepad.
type InputSystem struct {
	Buttons   []TouchButton
	touchIDs  []ebiten.TouchID
	last      Intent
	touchSeen bool
}

func NewInputSystem(buttons []TouchButton) *InputSystem {
	return &InputSystem{Buttons: buttons}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	i.last = i.Poll()
	i.last.Apply(w)
}

// Last returns the intent from the most recent Update.
func (i *InputSystem) Last() Intent {
	return i.last
}

// TouchSeen reports whether any touch has happened, which is when the
// on-screen buttons are shown.
func (i *InputSystem) TouchSeen() bool {
	return i.touchSeen
}

func (i *InputSystem) Poll() Intent {
	const stickDeadzone = 0.2

	in := Intent{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Action: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.Left = in.Left || leftX < 0
			in.Right = in.Right || leftX > 0
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Action = in.Action || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch HitTouchButton(i.visibleButtons(), float64(x), float64(y)) {
		case TouchNone, TouchJump:
			in.Jump = true
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch HitTouchButton(i.visibleButtons(), float64(x), float64(y)) {
		case TouchLeft:
			in.Left = true
		case TouchRight:
			in.Right = true
		}
	}

	i.touchIDs = ebiten.AppendTouchIDs(i.touchIDs[:0])
	if len(i.touchIDs) > 0 {
		i.touchSeen = true
	}
	for _, id := range i.touchIDs {
		x, y := ebiten.TouchPosition(id)
		switch HitTouchButton(i.Buttons, float64(x), float64(y)) {
		case TouchLeft:
			in.Left = true
		case TouchRight:
			in.Right = true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		switch HitTouchButton(i.Buttons, float64(x), float64(y)) {
		case TouchNone, TouchJump:
			in.Jump = true
		}
	}

	return in
}

func (i *InputSystem) visibleButtons() []TouchButton {
	if !i.touchSeen {
		return nil
	}
	return i.Buttons
}

// RequestJump queues a jump edge on the player, as a tap would.
func RequestJump(w *ecs.World) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.JumpPressed = true
	})
}

// TryJump starts a jump if the run is live and the player is not already
// airborne from a jump. It reports whether the jump happened.
func TryJump(w *ecs.World, strength float64) bool {
	if w == nil {
		return false
	}
	_, run, ok := ecs.FirstValue(w, component.RunStateComponent.Kind())
	if !ok || !run.Running || run.Paused {
		return false
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	body, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || body.Jumping {
		return false
	}

	body.VelocityY = strength
	body.Jumping = true
	w.Events().Push(ecs.Event{Type: ecs.EventJump})
	return true
}
