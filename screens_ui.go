package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/memorylane/common"
	"golang.org/x/image/font/basicfont"
)

var (
	overlayBackdrop = color.NRGBA{A: 140}
	panelColor      = color.NRGBA{R: 0xFF, G: 0xF5, B: 0xE6, A: 245}
	titleColor      = color.NRGBA{R: 0xC0, G: 0x1E, B: 0x3A, A: 0xFF}
	bodyColor       = color.NRGBA{R: 0x33, G: 0x22, B: 0x22, A: 0xFF}
	buttonColor     = color.NRGBA{R: 0xE0, G: 0x4B, B: 0x5A, A: 0xFF}
	buttonPressed   = color.NRGBA{R: 0xB8, G: 0x36, B: 0x44, A: 0xFF}
	buttonLabel     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// screensUI holds the start, memory and end overlays. Exactly one of them is
// visible, or none while playing.
type screensUI struct {
	ui   *ebitenui.UI
	root *widget.Container
	face ebtext.Face

	start  *widget.Container
	memory *widget.Container
	end    *widget.Container

	memoryTitle *widget.Text
	memoryText  *widget.Text
	endSummary  *widget.Text
	copyButton  *widget.Button

	game *Game
}

func newScreensUI(g *Game) *screensUI {
	s := &screensUI{
		game: g,
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}

	s.start = s.panel(
		s.text("Memory Lane", titleColor),
		s.text("Run right, bump the ? blocks and catch every heart.", bodyColor),
		s.button("Start", g.startRun),
		s.text("press Space to start", bodyColor),
	)

	s.memoryTitle = s.text("", titleColor)
	s.memoryText = s.text("", bodyColor)
	s.copyButton = s.button("Copy memory", g.copyMemory)
	s.memory = s.panel(
		s.memoryTitle,
		s.memoryText,
		s.row(s.button("Continue", g.closeMemory), s.copyButton),
	)

	s.endSummary = s.text("", bodyColor)
	s.end = s.panel(
		s.text("You made it to the castle!", titleColor),
		s.endSummary,
		s.button("Play again", func() { g.show(screenStart) }),
	)

	s.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	s.root.AddChild(s.start)
	s.root.AddChild(s.memory)
	s.root.AddChild(s.end)

	s.ui = &ebitenui.UI{Container: s.root}
	return s
}

// Show makes the overlay for scr visible and fills in its text.
func (s *screensUI) Show(scr screen) {
	switch scr {
	case screenMemory:
		if m, ok := s.game.currentMemory(); ok {
			s.memoryTitle.Label = m.Title
			s.memoryText.Label = m.Text
		} else {
			s.memoryTitle.Label = "A memory"
			s.memoryText.Label = ""
		}
	case screenEnd:
		s.endSummary.Label = fmt.Sprintf("%d / %d memories collected", s.game.heartsCollected(), s.game.hud.total)
	}

	setVisible(s.start, scr == screenStart)
	setVisible(s.memory, scr == screenMemory)
	setVisible(s.end, scr == screenEnd)
	s.root.RequestRelayout()
}

func (s *screensUI) Update() {
	s.ui.Update()
}

func (s *screensUI) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
}

// panel is a full-screen dimmed backdrop with a centred column of children.
func (s *screensUI) panel(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	backdrop := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(overlayBackdrop)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
		),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 28, Bottom: 28, Left: 36, Right: 36}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		column.AddChild(c)
	}
	backdrop.AddChild(column)
	backdrop.GetWidget().Visibility = widget.Visibility_Hide
	return backdrop
}

func (s *screensUI) row(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		row.AddChild(c)
	}
	return row
}

func (s *screensUI) text(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &s.face, clr),
		widget.TextOpts.MaxWidth(common.BaseWidth/2),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (s *screensUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonColor),
			Hover:   imageui.NewNineSliceColor(buttonColor),
			Pressed: imageui.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, &s.face, &widget.ButtonTextColor{Idle: buttonLabel}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
