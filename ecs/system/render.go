package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/common"
	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/levels"
	"github.com/milk9111/memorylane/prefabs"
	"golang.org/x/image/font/basicfont"
)

const (
	castleOffscreenBuffer = 50
	castleDoorW           = 72
	castleDoorH           = 80
	castleDoorMargin      = 24
	outlineWidth          = 2
	pipeRimOverhang       = 4
	pipeRimExtraWidth     = 8
	pipeRimCapHeight      = 10
	pipeRimYOffset        = 6
	cloudFallbackY        = 70
	cloudArcSmall         = 18
	cloudArcLarge         = 22
	cloudFallbackRectW    = 72
	cloudFallbackRectH    = 14
	flagFallbackWidth     = 8
	flagFallbackBallR     = 10
	birdMargin            = 50
	glowRings             = 6
)

// RenderSystem draws the world. It only reads simulation state; the one
// piece of animation state it owns is the cached sky gradient.
type RenderSystem struct {
	geo      *levels.Geometry
	provider *assets.Provider
	spec     *prefabs.RenderSpec
	birds    *prefabs.BirdSpec

	face text.Face
	sky  *ebiten.Image

	Debug bool
}

func NewRenderSystem(geo *levels.Geometry, provider *assets.Provider, spec *prefabs.RenderSpec, birds *prefabs.BirdSpec) *RenderSystem {
	r := &RenderSystem{
		geo:      geo,
		provider: provider,
		spec:     spec,
		birds:    birds,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	if r.spec == nil {
		r.spec = &prefabs.RenderSpec{}
	}
	return r
}

func (r *RenderSystem) SetSpec(spec *prefabs.RenderSpec) {
	if r == nil || spec == nil {
		return
	}
	r.spec = spec
	r.sky = nil
}

// Draw renders both layers back to back.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	r.DrawBackground(w, screen)
	r.DrawForeground(w, screen)
}

// DrawBackground draws sky, scenery, level geometry and released hearts.
func (r *RenderSystem) DrawBackground(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.geo == nil {
		return
	}
	scroll := ScrollOffset(w)
	width := float64(screen.Bounds().Dx())
	view := ViewBB(scroll, width, 0)

	r.drawSky(screen)
	r.drawHills(screen, scroll)
	r.drawClouds(screen, scroll)
	r.drawBirds(w, screen, scroll)
	r.drawPipes(screen, scroll, view)
	r.drawCastle(screen, scroll, width)
	for _, b := range r.geo.Bricks {
		if Visible(view, b) {
			r.drawBrickRect(screen, b, scroll)
		}
	}
	r.drawGround(screen, scroll)
	r.drawStairs(screen, scroll, view)
	r.drawHeartRows(w, screen, scroll, view)
	r.drawHearts(w, screen, scroll, view)
}

// DrawForeground draws the player, flagpole, fireworks and debug overlays.
func (r *RenderSystem) DrawForeground(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.geo == nil {
		return
	}
	scroll := ScrollOffset(w)
	width := float64(screen.Bounds().Dx())

	r.drawPlayer(w, screen, scroll)
	r.drawFlagpole(w, screen, scroll, width)
	r.drawFireworks(w, screen, scroll, width)
	if r.Debug {
		r.drawHitboxes(w, screen, scroll)
	}
}

func (r *RenderSystem) color(name string, fallback color.Color) color.Color {
	return r.spec.Color(name, fallback)
}

func (r *RenderSystem) sheet(name string, rect prefabs.RectSpec) *ebiten.Image {
	if !r.provider.Ready(name) || rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	img := r.provider.Image(name)
	if img == nil {
		return nil
	}
	sub := image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H).Intersect(img.Bounds())
	if sub.Empty() {
		return nil
	}
	return img.SubImage(sub).(*ebiten.Image)
}

// blit draws src stretched to the destination box.
func blit(screen, src *ebiten.Image, x, y, w, h float64, flip bool) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	sx := w / float64(b.Dx())
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(b.Dx()), 0)
	}
	op.GeoM.Scale(sx, h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(src, op)
}

func (r *RenderSystem) drawSky(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	if r.sky == nil || r.sky.Bounds().Dy() != h {
		top := color.NRGBAModel.Convert(r.color("sky_top", color.NRGBA{0x5C, 0x94, 0xE3, 0xFF})).(color.NRGBA)
		bottom := color.NRGBAModel.Convert(r.color("sky_bottom", color.NRGBA{0xB4, 0xD8, 0xF7, 0xFF})).(color.NRGBA)
		rgba := image.NewRGBA(image.Rect(0, 0, 1, h))
		for y := 0; y < h; y++ {
			t := float64(y) / float64(max(1, h-1))
			lerp := func(a, b uint8) uint8 { return uint8(math.Round(common.Lerp(float64(a), float64(b), t))) }
			rgba.Set(0, y, color.NRGBA{lerp(top.R, bottom.R), lerp(top.G, bottom.G), lerp(top.B, bottom.B), 0xFF})
		}
		r.sky = ebiten.NewImageFromImage(rgba)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screen.Bounds().Dx()), 1)
	screen.DrawImage(r.sky, op)
}

func (r *RenderSystem) drawHills(screen *ebiten.Image, scroll float64) {
	s := r.spec
	for i, hill := range r.geo.Hills {
		rect, ok := s.Hills[hill.Kind]
		if !ok {
			continue
		}
		w := float64(rect.W) * s.HillScale
		h := float64(rect.H) * s.HillScale
		x := hill.X - scroll*s.HillParallax
		if x+w < 0 || x > float64(screen.Bounds().Dx()) {
			continue
		}
		if img := r.sheet(assets.Tiles, rect); img != nil {
			blit(screen, img, x, r.geo.GroundY-h+h*s.HillOverlap, w, h, false)
			continue
		}
		fill := r.color("hill", color.NRGBA{0x4C, 0xAF, 0x50, 0xFF})
		if i%2 == 1 {
			fill = r.color("hill_alt", color.NRGBA{0x8D, 0xB6, 0x00, 0xFF})
		}
		vector.FillCircle(screen, float32(x+w/2), float32(r.geo.GroundY), float32(w/2), fill, true)
	}
}

func (r *RenderSystem) drawClouds(screen *ebiten.Image, scroll float64) {
	s := r.spec
	cl := r.sheet(assets.Tiles, s.CloudLeft)
	cm := r.sheet(assets.Tiles, s.CloudMid)
	cr := r.sheet(assets.Tiles, s.CloudRight)
	white := r.color("cloud", color.White)

	for _, base := range r.geo.Clouds {
		x := base - scroll*s.CloudParallax
		if cl != nil && cm != nil && cr != nil {
			sc := s.CloudScale
			lw, mw, rw := float64(s.CloudLeft.W)*sc, float64(s.CloudMid.W)*sc, float64(s.CloudRight.W)*sc
			h := float64(s.CloudMid.H) * sc
			blit(screen, cl, x, s.CloudY, lw, h, false)
			blit(screen, cm, x+lw, s.CloudY, mw, h, false)
			blit(screen, cm, x+lw+mw, s.CloudY, mw, h, false)
			blit(screen, cr, x+lw+2*mw, s.CloudY, rw, h, false)
			continue
		}
		y := float32(cloudFallbackY)
		fx := float32(x)
		vector.FillCircle(screen, fx, y+5, cloudArcSmall, white, true)
		vector.FillCircle(screen, fx+22, y, cloudArcLarge, white, true)
		vector.FillCircle(screen, fx+48, y+5, cloudArcSmall, white, true)
		vector.FillRect(screen, fx-8, y+2, cloudFallbackRectW, cloudFallbackRectH, white, false)
	}
}

func (r *RenderSystem) drawBirds(w *ecs.World, screen *ebiten.Image, scroll float64) {
	if r.birds == nil {
		return
	}
	span := float64(r.birds.Count) * r.birds.Spacing
	ink := color.Color(color.NRGBA{0x2C, 0x3E, 0x50, 0xFF})
	if r.birds.Color != nil && r.birds.Color.Color != nil {
		ink = r.birds.Color.Color
	}
	stroke := r.birds.Stroke
	if stroke <= 0 {
		stroke = 1.5
	}
	ecs.ForEach2(w, component.BirdComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Bird, tr *component.Transform) {
		x := BirdScreenX(tr.X, scroll, r.birds.Parallax, span, birdMargin)
		if x < -birdMargin || x > float64(screen.Bounds().Dx())+birdMargin {
			return
		}
		wing := b.Size * 3
		dy := math.Sin(b.FlapPhase) * b.Size * 1.5
		cx, cy := float32(x), float32(tr.Y)
		vector.StrokeLine(screen, cx-float32(wing), cy+float32(dy), cx, cy, stroke, ink, true)
		vector.StrokeLine(screen, cx, cy, cx+float32(wing), cy+float32(dy), stroke, ink, true)
	})
}

func (r *RenderSystem) drawPipes(screen *ebiten.Image, scroll float64, view cp.BB) {
	for i, p := range r.geo.Pipes {
		if !Visible(view, p.Rect) {
			continue
		}
		x := p.X - scroll
		if img := r.sheet(assets.Tiles, r.spec.Pipes[p.Type]); img != nil {
			blit(screen, img, x, p.Y, p.W, p.H, false)
			continue
		}
		fill := r.color("pipe", color.NRGBA{0x00, 0xA8, 0x00, 0xFF})
		dark := r.color("pipe_dark", color.NRGBA{0x00, 0x60, 0x00, 0xFF})
		if i%2 == 1 {
			fill = r.color("pipe_alt", color.NRGBA{0x6A, 0x6A, 0x6A, 0xFF})
			dark = r.color("pipe_alt_dark", color.NRGBA{0x4A, 0x4A, 0x4A, 0xFF})
		}
		vector.FillRect(screen, float32(x), float32(p.Y), float32(p.W), float32(p.H), fill, false)
		vector.FillRect(screen, float32(x-pipeRimOverhang), float32(p.Y-pipeRimYOffset), float32(p.W+pipeRimExtraWidth), pipeRimCapHeight, dark, false)
	}
}

func (r *RenderSystem) drawCastle(screen *ebiten.Image, scroll, width float64) {
	c := r.geo.Castle
	if !Visible(ViewBB(scroll, width, castleOffscreenBuffer), c) {
		return
	}
	x := c.X - scroll
	if img := r.sheet(assets.Tiles, r.spec.Castle); img != nil {
		blit(screen, img, x, c.Y, c.W, c.H, false)
		return
	}

	tile := r.geo.Tile
	ground := r.groundTile()
	overlay := r.color("castle_overlay", color.NRGBA{0, 0, 0, 0x73})
	for cx := 0.0; cx < c.W; cx += tile {
		for cy := 0.0; cy < c.H; cy += tile {
			if ground != nil {
				blit(screen, ground, x+cx, c.Y+cy, tile, tile, false)
				vector.FillRect(screen, float32(x+cx), float32(c.Y+cy), float32(tile), float32(tile), overlay, false)
			} else {
				vector.FillRect(screen, float32(x+cx), float32(c.Y+cy), float32(tile), float32(tile), r.color("castle_brick", color.NRGBA{0x4A, 0x4A, 0x4A, 0xFF}), false)
			}
		}
	}
	doorX := x + (c.W-castleDoorW)/2
	doorY := c.Y + c.H - castleDoorH - castleDoorMargin
	vector.FillRect(screen, float32(doorX), float32(doorY), castleDoorW, castleDoorH, r.color("castle_door", color.NRGBA{0x0D, 0x0D, 0x0D, 0xFF}), false)
}

func (r *RenderSystem) groundTile() *ebiten.Image {
	if !r.provider.Ready(assets.Ground) {
		return nil
	}
	img := r.provider.Image(assets.Ground)
	if img == nil {
		return nil
	}
	n := r.provider.GroundSourceSize()
	return img.SubImage(image.Rect(0, 0, n, n)).(*ebiten.Image)
}

func (r *RenderSystem) drawTile(screen *ebiten.Image, x, y float64, fill, outline color.Color) {
	tile := r.geo.Tile
	if ground := r.groundTile(); ground != nil {
		blit(screen, ground, x, y, tile, tile, false)
		return
	}
	vector.FillRect(screen, float32(x), float32(y), float32(tile), float32(tile), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(tile), float32(tile), outlineWidth, outline, false)
}

func (r *RenderSystem) drawBrickRect(screen *ebiten.Image, b levels.Rect, scroll float64) {
	x := b.X - scroll
	if ground := r.groundTile(); ground != nil {
		for cx := 0.0; cx < b.W; cx += r.geo.Tile {
			for cy := 0.0; cy < b.H; cy += r.geo.Tile {
				blit(screen, ground, x+cx, b.Y+cy, r.geo.Tile, r.geo.Tile, false)
			}
		}
		return
	}
	vector.FillRect(screen, float32(x), float32(b.Y), float32(b.W), float32(b.H), r.color("brick", color.NRGBA{0xC8, 0x78, 0x38, 0xFF}), false)
	vector.StrokeRect(screen, float32(x), float32(b.Y), float32(b.W), float32(b.H), outlineWidth, r.color("brick_outline", color.NRGBA{0x8B, 0x45, 0x13, 0xFF}), false)
}

func (r *RenderSystem) drawGround(screen *ebiten.Image, scroll float64) {
	ground := r.groundTile()
	if ground == nil {
		return
	}
	tile := r.geo.Tile
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	startCol := math.Floor(scroll / tile)
	cols := int(math.Ceil(width/tile)) + 2
	rows := int(math.Ceil((height-r.geo.GroundY)/tile)) + 1

	for col := -1; col <= cols; col++ {
		x := (startCol+float64(col))*tile - scroll
		if x+tile < 0 || x > width {
			continue
		}
		for row := 0; row < rows; row++ {
			blit(screen, ground, x, r.geo.GroundY+float64(row)*tile, tile, tile, false)
		}
	}
}

func (r *RenderSystem) drawStairs(screen *ebiten.Image, scroll float64, view cp.BB) {
	fill := r.color("mountain", color.NRGBA{0x8B, 0x73, 0x55, 0xFF})
	outline := r.color("mountain_outline", color.NRGBA{0x5C, 0x40, 0x33, 0xFF})
	for _, s := range r.geo.Stairs {
		if Visible(view, s) {
			r.drawTile(screen, s.X-scroll, s.Y, fill, outline)
		}
	}
}

func (r *RenderSystem) drawHeartRows(w *ecs.World, screen *ebiten.Image, scroll float64, view cp.BB) {
	hit := make(map[int]bool, len(r.geo.HeartRows))
	ecs.ForEach(w, component.QuestionBlockComponent.Kind(), func(_ ecs.Entity, qb *component.QuestionBlock) {
		hit[qb.Index] = qb.Hit
	})

	tile := r.geo.Tile
	brick := r.color("brick", color.NRGBA{0xC8, 0x78, 0x38, 0xFF})
	brickOutline := r.color("brick_outline", color.NRGBA{0x8B, 0x45, 0x13, 0xFF})
	for i, row := range r.geo.HeartRows {
		if !Visible(view, row.Rect) {
			continue
		}
		for col := 0; col < row.Blocks; col++ {
			x := row.X + float64(col)*tile - scroll
			if col != row.HeartIndex {
				r.drawTile(screen, x, row.Y, brick, brickOutline)
				continue
			}
			if hit[i] {
				vector.FillRect(screen, float32(x), float32(row.Y), float32(tile), float32(tile), r.color("hit_block", color.NRGBA{0x8B, 0x69, 0x14, 0xFF}), false)
				vector.StrokeRect(screen, float32(x), float32(row.Y), float32(tile), float32(tile), outlineWidth, r.color("hit_block_stroke", color.NRGBA{0x5C, 0x40, 0x33, 0xFF}), false)
				continue
			}
			vector.FillRect(screen, float32(x), float32(row.Y), float32(tile), float32(tile), brick, false)
			vector.StrokeRect(screen, float32(x), float32(row.Y), float32(tile), float32(tile), outlineWidth, brickOutline, false)
			r.drawQuestionMark(screen, x+tile/2, row.Y+tile/2)
		}
	}
}

func (r *RenderSystem) drawQuestionMark(screen *ebiten.Image, cx, cy float64) {
	const scale = 2
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, "?", r.face, op)
}

func (r *RenderSystem) drawHearts(w *ecs.World, screen *ebiten.Image, scroll float64, view cp.BB) {
	hb := r.spec.Heartbeat
	sprite := r.provider.Image(assets.Heart)
	glow := color.NRGBAModel.Convert(r.color("heart_glow", color.NRGBA{0xFF, 0x32, 0x50, 0x4D})).(color.NRGBA)

	ecs.ForEach2(w, component.HeartComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, heart *component.Heart, tr *component.Transform) {
		if heart.Collected || !heart.Released {
			return
		}
		if !Visible(view, levels.Rect{X: tr.X, Y: tr.Y, W: heart.Width, H: heart.Height}) {
			return
		}
		beat := HeartbeatBeat(heart.Angle, hb)
		cx := tr.X - scroll + heart.Width/2
		cy := tr.Y + heart.Height/2

		glowR := hb.GlowBaseR * (1 + beat*2)
		for i := glowRings; i > 0; i-- {
			t := float64(i) / glowRings
			rad := hb.GlowInnerR + (glowR-hb.GlowInnerR)*t
			ring := glow
			ring.A = uint8(float64(glow.A) * (1 - t) / 2)
			vector.FillCircle(screen, float32(cx), float32(cy), float32(rad), ring, true)
		}

		if sprite == nil {
			return
		}
		b := sprite.Bounds()
		scale := hb.DisplayScale * (1 + beat)
		if scale <= 0 {
			scale = 1
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx, cy)
		screen.DrawImage(sprite, op)
	})
}

func (r *RenderSystem) drawPlayer(w *ecs.World, screen *ebiten.Image, scroll float64) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	x := tr.X - scroll
	if x+body.Width < 0 || x > float64(screen.Bounds().Dx()) {
		return
	}
	animTime := 0
	if _, run, ok := ecs.FirstValue(w, component.RunStateComponent.Kind()); ok {
		animTime = run.AnimTime
	}

	img := r.provider.Image(assets.Character)
	if img == nil {
		vector.FillRect(screen, float32(x), float32(tr.Y-body.Height), float32(body.Width), float32(body.Height), r.color("brick", color.NRGBA{0xE5, 0x25, 0x21, 0xFF}), false)
		return
	}
	// The sheet faces left, so right-facing frames are mirrored.
	flip := body.Facing == 1

	if r.provider.IsFallback(assets.Character) {
		frame := RunFrameIndex(animTime, r.spec.AnimFrameDivisor, assets.FallbackFrameCount-1)
		src := image.Rect(frame*assets.FallbackFrameSize, 0, (frame+1)*assets.FallbackFrameSize, assets.FallbackSheetHeight)
		blit(screen, img.SubImage(src).(*ebiten.Image), x, tr.Y-assets.FallbackSheetHeight, assets.FallbackFrameSize, assets.FallbackSheetHeight, flip)
		return
	}

	frames := r.spec.RunFrames
	if len(frames) == 0 {
		return
	}
	f := frames[RunFrameIndex(animTime, r.spec.AnimFrameDivisor, len(frames))]
	sy := f.Y
	if r.spec.RunFramesFromBottom {
		sy = img.Bounds().Dy() - f.Y - f.H
	}
	dw := body.Width
	dh := float64(f.H) * dw / float64(f.W)
	src := image.Rect(f.X, sy, f.X+f.W, sy+f.H)
	blit(screen, img.SubImage(src).(*ebiten.Image), x, tr.Y-dh, dw, dh, flip)
}

func (r *RenderSystem) drawFlagpole(w *ecs.World, screen *ebiten.Image, scroll, width float64) {
	pole := r.geo.Flagpole
	screenX := pole.X - scroll

	frames := r.spec.FlagFrames
	if len(frames) > 0 && r.provider.Ready(assets.Tiles) {
		_, run, _ := ecs.FirstValue(w, component.RunStateComponent.Kind())
		f := frames[FlagFrameIndex(run, pole, r.geo.GroundY, len(frames))]
		scale := pole.Height / float64(f.H)
		displayW := math.Round(float64(f.W) * scale)
		drawX := screenX - math.Round(r.spec.FlagShaftX*scale)
		if drawX+displayW < 0 || drawX > width {
			return
		}
		if img := r.sheet(assets.Tiles, f); img != nil {
			blit(screen, img, drawX, pole.Top, displayW, pole.Height, false)
			return
		}
	}

	if screenX+flagFallbackBallR < 0 || screenX-flagFallbackBallR > width {
		return
	}
	vector.FillRect(screen, float32(screenX-flagFallbackWidth/2), float32(pole.Top), flagFallbackWidth, float32(pole.Height), r.color("flagpole", color.NRGBA{0x6B, 0x8E, 0x23, 0xFF}), false)
	vector.FillCircle(screen, float32(screenX), float32(pole.Top), flagFallbackBallR, r.color("flagpole_ball", color.NRGBA{0x22, 0x8B, 0x22, 0xFF}), true)
}

func (r *RenderSystem) drawFireworks(w *ecs.World, screen *ebiten.Image, scroll, width float64) {
	look := r.spec.Fireworks
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(_ ecs.Entity, p *component.Particle) {
		x := p.Pos.X - scroll
		if x < -look.OffscreenBuffer || x > width+look.OffscreenBuffer {
			return
		}
		core, glow := FireworkColors(p, look)
		rad := p.Size * p.Bright
		if rad <= 0 {
			return
		}
		vector.FillCircle(screen, float32(x), float32(p.Pos.Y), float32(rad), core, true)
		vector.FillCircle(screen, float32(x), float32(p.Pos.Y), float32(rad*look.GlowSize), glow, true)
	})
}

func (r *RenderSystem) drawHitboxes(w *ecs.World, screen *ebiten.Image, scroll float64) {
	box := color.NRGBA{R: 255, A: 200}
	solid := color.NRGBA{B: 255, A: 160}
	for _, s := range r.geo.Solids {
		vector.StrokeRect(screen, float32(s.X-scroll), float32(s.Y), float32(s.W), float32(s.H), 1, solid, false)
	}
	for _, p := range r.geo.Platforms {
		h := max(p.H, 1)
		vector.StrokeRect(screen, float32(p.X-scroll), float32(p.Y), float32(p.W), float32(h), 1, color.NRGBA{G: 200, A: 160}, false)
	}
	if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		tr, okT := ecs.Get(w, e, component.TransformComponent.Kind())
		body, okB := ecs.Get(w, e, component.PlayerComponent.Kind())
		if okT && okB {
			vector.StrokeRect(screen, float32(tr.X-scroll), float32(tr.Y-body.Height), float32(body.Width), float32(body.Height), 1, box, false)
		}
	}
	pole := r.geo.Flagpole
	vector.StrokeRect(screen, float32(pole.X-scroll), float32(pole.Top), float32(pole.CollisionWidth+pole.HitboxExtend), float32(pole.Height), 1, box, false)
}
