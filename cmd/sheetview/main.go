// Command sheetview previews the animation frames the game cuts from its
// sprite sheets, using the rectangles in prefabs/render.yaml.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/prefabs"
)

const viewSize = 512

type previewGame struct {
	name        string
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x5C, 0x94, 0xE3, 0xff})
	if len(g.frames) == 0 {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s: no frames", g.name))
		return
	}
	frame := g.frames[g.current]
	b := frame.Bounds()
	scale := fitScale(b.Dx(), b.Dy(), viewSize-64)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((viewSize-float64(b.Dx())*scale)/2, (viewSize-float64(b.Dy())*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  %dx%d", g.name, g.current+1, len(g.frames), b.Dx(), b.Dy()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// fitScale is the largest whole-number scale that fits w x h inside box,
// never below 1.
func fitScale(w, h, box int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	s := min(box/w, box/h)
	return float64(max(s, 1))
}

// sheetFor names the sheet a frame set is cut from.
func sheetFor(set string) (string, error) {
	switch set {
	case "run", "fallback":
		return assets.Character, nil
	case "flag":
		return assets.Tiles, nil
	}
	return "", fmt.Errorf("sheetview: unknown frame set %q (run, flag, fallback)", set)
}

// frameRects returns the source rectangles for a named animation. Run frames
// may be measured from the sheet bottom, as the game does.
func frameRects(set string, spec *prefabs.RenderSpec, sheetHeight int) []image.Rectangle {
	var rects []image.Rectangle
	switch set {
	case "run":
		for _, f := range spec.RunFrames {
			y := f.Y
			if spec.RunFramesFromBottom {
				y = sheetHeight - f.Y - f.H
			}
			rects = append(rects, image.Rect(f.X, y, f.X+f.W, y+f.H))
		}
	case "flag":
		for _, f := range spec.FlagFrames {
			rects = append(rects, image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H))
		}
	case "fallback":
		for i := 0; i < assets.FallbackFrameCount; i++ {
			rects = append(rects, image.Rect(i*assets.FallbackFrameSize, 0, (i+1)*assets.FallbackFrameSize, assets.FallbackSheetHeight))
		}
	}
	return rects
}

func loadFrames(provider *assets.Provider, set string, spec *prefabs.RenderSpec) ([]*ebiten.Image, error) {
	name, err := sheetFor(set)
	if err != nil {
		return nil, err
	}
	if set == "fallback" {
		provider = assets.NewProvider(nil, 40)
	} else if provider.IsFallback(name) {
		return nil, fmt.Errorf("sheetview: %s sheet not found, try -set fallback", name)
	}
	if !provider.Ready(name) {
		return nil, fmt.Errorf("sheetview: %s sheet not available", name)
	}

	sheet := provider.Image(name)
	rects := frameRects(set, spec, provider.Source(name).Bounds().Dy())
	frames := make([]*ebiten.Image, 0, len(rects))
	for _, r := range rects {
		r = r.Intersect(sheet.Bounds())
		if r.Empty() {
			continue
		}
		frames = append(frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return frames, nil
}

func main() {
	sprites := flag.String("sprites", assets.DefaultSpriteDir, "directory holding the sprite sheets")
	set := flag.String("set", "run", "frames to preview: run, flag or fallback")
	fps := flag.Int("fps", 8, "playback frames per second")
	flag.Parse()

	spec, err := prefabs.LoadRenderSpec()
	if err != nil {
		log.Fatal(err)
	}
	provider := assets.NewProvider(os.DirFS(*sprites), 40)
	frames, err := loadFrames(provider, *set, spec)
	if err != nil {
		log.Fatal(err)
	}

	ticks := 1
	if *fps > 0 {
		ticks = max(60 / *fps, 1)
	}
	g := &previewGame{name: *set, frames: frames, ticksPerFrm: ticks}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sheet preview: " + *set)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
