package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/common"
	"github.com/milk9111/memorylane/ecs/system"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin    = 16.0
	hudTextScale = 2.0
	hudHeartSize = 28.0
	instructions = "Arrows / A D to move  -  Space, click or tap to jump"
)

var (
	hudShadow      = color.NRGBA{A: 160}
	hudText        = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	touchFill      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 60}
	touchFillHeld  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 120}
	touchOutline   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 160}
	counterBacking = color.NRGBA{A: 90}
)

// hud draws the heart counter, the instruction line and the touch buttons
// over the scene.
type hud struct {
	provider *assets.Provider
	face     ebtext.Face
	total    int
}

func newHUD(provider *assets.Provider, total int) *hud {
	return &hud{
		provider: provider,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		total:    total,
	}
}

func (h *hud) Draw(screen *ebiten.Image, collected int, scr screen, input *system.InputSystem) {
	h.drawCounter(screen, collected)

	if scr == screenPlay {
		h.drawLine(screen, instructions, common.BaseWidth/2, common.BaseHeight-hudMargin, ebtext.AlignCenter, ebtext.AlignEnd)
		if input != nil && input.TouchSeen() {
			h.drawTouchButtons(screen, input)
		}
	}
}

func (h *hud) drawCounter(screen *ebiten.Image, collected int) {
	vector.FillRect(screen, hudMargin-6, hudMargin-6, hudHeartSize+130, hudHeartSize+12, counterBacking, false)

	if h.provider.Ready(assets.Heart) {
		img := h.provider.Image(assets.Heart)
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(hudHeartSize/float64(b.Dx()), hudHeartSize/float64(b.Dy()))
		op.GeoM.Translate(hudMargin, hudMargin)
		screen.DrawImage(img, op)
	}

	label := fmt.Sprintf("%d / %d", collected, h.total)
	h.drawLine(screen, label, hudMargin+hudHeartSize+10, hudMargin+hudHeartSize/2, ebtext.AlignStart, ebtext.AlignCenter)
}

// drawLine draws scaled text with a one-pixel drop shadow.
func (h *hud) drawLine(screen *ebiten.Image, s string, x, y float64, primary, secondary ebtext.Align) {
	for _, pass := range []struct {
		dx, dy float64
		clr    color.Color
	}{
		{dx: 2, dy: 2, clr: hudShadow},
		{clr: hudText},
	} {
		op := &ebtext.DrawOptions{}
		op.PrimaryAlign = primary
		op.SecondaryAlign = secondary
		op.GeoM.Scale(hudTextScale, hudTextScale)
		op.GeoM.Translate(x+pass.dx, y+pass.dy)
		op.ColorScale.ScaleWithColor(pass.clr)
		ebtext.Draw(screen, s, h.face, op)
	}
}

func (h *hud) drawTouchButtons(screen *ebiten.Image, input *system.InputSystem) {
	last := input.Last()
	for _, b := range input.Buttons {
		fill := touchFill
		switch {
		case b.Kind == system.TouchLeft && last.Left,
			b.Kind == system.TouchRight && last.Right,
			b.Kind == system.TouchJump && last.Jump:
			fill = touchFillHeld
		}
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, touchOutline, false)
		h.drawLine(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, ebtext.AlignCenter, ebtext.AlignCenter)
	}
}
