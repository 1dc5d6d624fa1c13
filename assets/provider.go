package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite names understood by Provider.
const (
	Character = "character"
	Ground    = "ground"
	Tiles     = "tiles"
	Heart     = "heart"
)

// DefaultSpriteDir is where sheets are looked up when no -sprites flag is given.
const DefaultSpriteDir = "assets/sprites"

var spriteFiles = map[string]string{
	Character: "mario.png",
	Ground:    "bricks.png",
	Tiles:     "tiles.png",
}

const (
	groundDoubleWidth = 80
	groundSourceTile  = 16
)

// Provider owns the sprite sheets. Sheets that fail to load are replaced by
// procedural fallbacks where one exists; the tile sheet has none and stays
// not ready, which the renderer answers with vector shapes.
type Provider struct {
	tile     int
	sources  map[string]image.Image
	fallback map[string]bool
	images   map[string]*ebiten.Image
}

// NewProvider decodes every known sheet from fsys. A nil fsys yields a
// provider backed entirely by fallbacks.
func NewProvider(fsys fs.FS, tile int) *Provider {
	p := &Provider{
		tile:     tile,
		sources:  make(map[string]image.Image),
		fallback: make(map[string]bool),
		images:   make(map[string]*ebiten.Image),
	}

	for name, file := range spriteFiles {
		img, err := decode(fsys, file)
		if err == nil {
			p.sources[name] = img
			continue
		}
		log.Printf("assets: %s unavailable, using fallback: %v", file, err)
		switch name {
		case Character:
			p.sources[name] = FallbackCharacterSheet()
			p.fallback[name] = true
		case Ground:
			p.sources[name] = FallbackGroundTile(tile)
			p.fallback[name] = true
		}
	}
	p.sources[Heart] = FallbackHeart()
	p.fallback[Heart] = true
	return p
}

func decode(fsys fs.FS, file string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("assets: decode %s: no sprite directory", file)
	}
	b, err := fs.ReadFile(fsys, cleanAssetPath(file))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", file, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", file, err)
	}
	return img, nil
}

// Ready reports whether name can be drawn from a bitmap.
func (p *Provider) Ready(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.sources[name]
	return ok
}

// IsFallback reports whether name is a generated stand-in.
func (p *Provider) IsFallback(name string) bool {
	return p != nil && p.fallback[name]
}

// Source returns the decoded or generated bitmap for name.
func (p *Provider) Source(name string) image.Image {
	if p == nil {
		return nil
	}
	return p.sources[name]
}

// Image returns name as a GPU image, converting on first use.
func (p *Provider) Image(name string) *ebiten.Image {
	if p == nil {
		return nil
	}
	if img, ok := p.images[name]; ok {
		return img
	}
	src, ok := p.sources[name]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	p.images[name] = img
	return img
}

// GroundSourceSize is the source square to sample from the ground sheet:
// the 80 px wide sheet packs 16 px tiles, anything else is one whole tile.
func (p *Provider) GroundSourceSize() int {
	src := p.Source(Ground)
	if src != nil && !p.IsFallback(Ground) && src.Bounds().Dx() == groundDoubleWidth {
		return groundSourceTile
	}
	return p.tile
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/sprites/"); idx >= 0 {
			return s[idx+len("/sprites/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "sprites/") {
		return strings.TrimPrefix(s, "sprites/")
	}
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
