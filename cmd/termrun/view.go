package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/ecs/system"
	"github.com/milk9111/memorylane/levels"
)

// canvas is the part of tcell.Screen the view draws through.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleSky      = tcell.StyleDefault.Background(tcell.NewRGBColor(0x5C, 0x94, 0xFC))
	styleGround   = styleSky.Foreground(tcell.NewRGBColor(0xC8, 0x78, 0x38))
	styleBrick    = styleSky.Foreground(tcell.NewRGBColor(0xA0, 0x60, 0x20))
	styleBlock    = styleSky.Foreground(tcell.NewRGBColor(0xF8, 0xB8, 0x00)).Bold(true)
	styleUsed     = styleSky.Foreground(tcell.NewRGBColor(0x8B, 0x45, 0x13))
	stylePipe     = styleSky.Foreground(tcell.NewRGBColor(0x00, 0xA8, 0x00))
	styleCastle   = styleSky.Foreground(tcell.NewRGBColor(0x70, 0x70, 0x70))
	styleHeart    = styleSky.Foreground(tcell.NewRGBColor(0xE0, 0x20, 0x40)).Bold(true)
	stylePlayer   = styleSky.Foreground(tcell.NewRGBColor(0xD8, 0x28, 0x00)).Bold(true)
	stylePole     = styleSky.Foreground(tcell.NewRGBColor(0xF0, 0xF0, 0xF0))
	styleFlag     = styleSky.Foreground(tcell.NewRGBColor(0x00, 0xC0, 0x00)).Bold(true)
	styleBird     = styleSky.Foreground(tcell.NewRGBColor(0x2C, 0x3E, 0x50))
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleTextBold = styleText.Bold(true)
)

// view maps world pixels onto terminal cells. Cells are about twice as tall
// as they are wide, so a column covers half the pixels a row does.
type view struct {
	cols, rows   int
	cellW, cellH float64
	scroll       float64
}

func newView(cols, rows int, worldH float64) view {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cellH := worldH / float64(rows)
	return view{cols: cols, rows: rows, cellW: cellH / 2, cellH: cellH}
}

// Width is the world width the view shows.
func (v view) Width() float64 {
	return float64(v.cols) * v.cellW
}

func (v view) cell(x, y float64) (int, int) {
	return int(math.Floor((x - v.scroll) / v.cellW)), int(math.Floor(y / v.cellH))
}

// span returns the half-open cell range covering r; every non-empty rect
// covers at least one cell.
func (v view) span(r levels.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(r.X, r.Y)
	x1 = int(math.Ceil((r.Right() - v.scroll) / v.cellW))
	y1 = int(math.Ceil(r.Bottom() / v.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (v view) put(c canvas, x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= v.cols || y >= v.rows {
		return
	}
	c.SetContent(x, y, r, nil, style)
}

func (v view) fill(c canvas, r levels.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := v.span(r)
	for y := max(y0, 0); y < min(y1, v.rows); y++ {
		for x := max(x0, 0); x < min(x1, v.cols); x++ {
			c.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v view) text(c canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.put(c, x+i, y, r, style)
	}
}

// scene draws the level and its entities in the same order as the window
// renderer: static layers behind, player, pole and fireworks in front.
type scene struct {
	geo      *levels.Geometry
	parallax float64
	span     float64
}

func cameraScroll(w *ecs.World) float64 {
	if _, cam, ok := ecs.FirstValue(w, component.CameraComponent.Kind()); ok {
		return cam.ScrollOffset
	}
	return 0
}

func (s scene) background(c canvas, v view, w *ecs.World) {
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			c.SetContent(x, y, ' ', nil, styleSky)
		}
	}
	bb := system.ViewBB(v.scroll, v.Width(), v.cellW)

	ecs.ForEach2(w, component.BirdComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Bird, tr *component.Transform) {
		sx := system.BirdScreenX(tr.X, v.scroll, s.parallax, s.span, v.cellW)
		ch := 'v'
		if math.Sin(b.FlapPhase) < 0 {
			ch = '^'
		}
		v.put(c, int(math.Floor(sx/v.cellW)), int(math.Floor(tr.Y/v.cellH)), ch, styleBird)
	})

	castle := s.geo.Castle
	if system.Visible(bb, castle) {
		v.fill(c, castle, '#', styleCastle)
	}
	for _, p := range s.geo.Pipes {
		if system.Visible(bb, p.Rect) {
			v.fill(c, p.Rect, '|', stylePipe)
			x0, y0, x1, _ := v.span(p.Rect)
			for x := x0; x < x1; x++ {
				v.put(c, x, y0, '=', stylePipe)
			}
		}
	}
	for _, b := range s.geo.Bricks {
		if system.Visible(bb, b) {
			v.fill(c, b, '=', styleBrick)
		}
	}
	v.fill(c, levels.Rect{X: v.scroll, Y: s.geo.GroundY, W: v.Width(), H: float64(v.rows)*v.cellH - s.geo.GroundY}, '#', styleGround)
	for _, st := range s.geo.Stairs {
		if system.Visible(bb, st) {
			v.fill(c, st, '#', styleBrick)
		}
	}

	for _, row := range s.geo.HeartRows {
		if system.Visible(bb, row.Rect) {
			v.fill(c, row.Rect, '=', styleBrick)
		}
	}
	ecs.ForEach(w, component.QuestionBlockComponent.Kind(), func(_ ecs.Entity, q *component.QuestionBlock) {
		r := levels.Rect{X: q.X, Y: q.Top, W: q.Size, H: q.Size}
		if !system.Visible(bb, r) {
			return
		}
		if q.Hit {
			v.fill(c, r, '.', styleUsed)
			return
		}
		v.fill(c, r, '?', styleBlock)
	})
	ecs.ForEach2(w, component.HeartComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Heart, tr *component.Transform) {
		if !h.Released || h.Collected {
			return
		}
		x, y := v.cell(tr.X+h.Width/2, tr.Y+h.Height/2)
		v.put(c, x, y, '♥', styleHeart)
	})
}

func (s scene) foreground(c canvas, v view, w *ecs.World) {
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
		body, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
		if tr != nil && body != nil {
			v.fill(c, levels.Rect{X: tr.X, Y: tr.Y - body.Height, W: body.Width, H: body.Height}, '@', stylePlayer)
		}
	}

	pole := s.geo.Flagpole
	v.fill(c, levels.Rect{X: pole.X, Y: pole.Top, W: v.cellW / 2, H: pole.Height}, '|', stylePole)
	flagY := pole.Top
	if _, run, ok := ecs.FirstValue(w, component.RunStateComponent.Kind()); ok && run.FlagReached {
		flagY = run.FlagY
	}
	v.fill(c, levels.Rect{X: pole.X - pole.FlagWidth, Y: flagY, W: pole.FlagWidth, H: v.cellH}, '>', styleFlag)

	ecs.ForEach(w, component.ParticleComponent.Kind(), func(_ ecs.Entity, p *component.Particle) {
		clr := system.HSLToRGB(p.Hue, 1, 0.5+p.Bright*0.3)
		style := styleSky.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
		ch := '*'
		if p.Bright < 0.4 {
			ch = '.'
		}
		x, y := v.cell(p.Pos.X, p.Pos.Y)
		v.put(c, x, y, ch, style)
	})
}

// box draws lines centred on the screen inside a bordered panel.
func (v view) box(c canvas, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	x0, y0 := (v.cols-w)/2, (v.rows-h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch := ' '
			switch {
			case (y == 0 || y == h-1) && (x == 0 || x == w-1):
				ch = '+'
			case y == 0 || y == h-1:
				ch = '-'
			case x == 0 || x == w-1:
				ch = '|'
			}
			v.put(c, x0+x, y0+y, ch, styleText)
		}
	}
	for i, l := range lines {
		style := styleText
		if i == 0 {
			style = styleTextBold
		}
		pad := (width - len([]rune(l))) / 2
		v.text(c, x0+2+pad, y0+1+i, l, style)
	}
}

// wrap splits s into lines of at most width runes, breaking at spaces.
func wrap(s string, width int) []string {
	if width < 1 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len([]rune(line))+1+len([]rune(word)) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return out
}
