package levels

import "github.com/jakecoffman/cp"

type PlatformKind int

const (
	KindBrick PlatformKind = iota
	KindHeartRow
	KindStair
	KindPipeTop
)

func (k PlatformKind) String() string {
	switch k {
	case KindBrick:
		return "brick"
	case KindHeartRow:
		return "heart_row"
	case KindStair:
		return "stair"
	case KindPipeTop:
		return "pipe_top"
	default:
		return "unknown"
	}
}

type SolidKind int

const (
	SolidPipe SolidKind = iota
	SolidStair
)

// Rect is an axis-aligned box with Y growing downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// BB converts r to a chipmunk bounding box for overlap queries.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// Platform is a landable surface. H may be 0 for pipe tops.
type Platform struct {
	Rect
	Kind PlatformKind
}

// Solid blocks horizontal movement.
type Solid struct {
	Rect
	Kind SolidKind
}

type Pipe struct {
	Rect
	Type string
}

// HeartRow is a row of blocks where one block releases a heart.
type HeartRow struct {
	Rect
	Blocks     int
	HeartIndex int
}

// QuestionX is the world x of the row's question block.
func (h HeartRow) QuestionX(tile float64) float64 {
	return h.X + float64(h.HeartIndex)*tile
}

type Flagpole struct {
	X              float64
	Top            float64
	Height         float64
	CollisionWidth float64
	HitboxExtend   float64
	PlayerOffsetX  float64
	PlayerOffsetY  float64
	FlagWidth      float64
	FlagHeight     float64
}

// SlideEnd is the flag Y at which the slide finishes.
func (f Flagpole) SlideEnd(groundY float64) float64 {
	return groundY - f.FlagHeight
}

type Hill struct {
	X    float64
	Kind string
}

// Geometry is the resolved, immutable level for one ground line. It is
// built once per run and shared read-only by physics and render.
type Geometry struct {
	GroundY float64
	Tile    float64
	MinX    float64

	// Platforms are in resolution order: bricks, heart rows, stairs, pipe tops.
	Platforms []Platform
	// Solids are in push order: pipes, then stairs.
	Solids []Solid

	Pipes     []Pipe
	Bricks    []Rect
	HeartRows []HeartRow
	Stairs    []Rect
	Flagpole  Flagpole
	Castle    Rect

	Clouds []float64
	Hills  []Hill
}

// Build resolves layout against the ground line.
func Build(layout *Layout, groundY float64) *Geometry {
	g := &Geometry{
		GroundY: groundY,
		Tile:    layout.Tile,
		MinX:    layout.MinX,
		Clouds:  append([]float64(nil), layout.Clouds...),
	}

	for _, b := range layout.Bricks {
		g.Bricks = append(g.Bricks, Rect{X: b.X, Y: groundY + b.YOff, W: b.W, H: b.H})
	}
	for _, h := range layout.HeartRows {
		g.HeartRows = append(g.HeartRows, HeartRow{
			Rect:       Rect{X: h.X, Y: groundY + h.YOff, W: float64(h.Blocks) * layout.Tile, H: layout.Tile},
			Blocks:     h.Blocks,
			HeartIndex: h.HeartIndex,
		})
	}
	g.Stairs = staircase(layout.Staircase, layout.Tile, groundY)
	for _, p := range layout.Pipes {
		h := layout.PipeHeights[p.Type]
		g.Pipes = append(g.Pipes, Pipe{
			Rect: Rect{X: p.X, Y: groundY - h, W: layout.PipeWidth, H: h},
			Type: p.Type,
		})
	}

	for _, b := range g.Bricks {
		g.Platforms = append(g.Platforms, Platform{Rect: b, Kind: KindBrick})
	}
	for _, h := range g.HeartRows {
		g.Platforms = append(g.Platforms, Platform{Rect: h.Rect, Kind: KindHeartRow})
	}
	for _, s := range g.Stairs {
		g.Platforms = append(g.Platforms, Platform{Rect: s, Kind: KindStair})
	}
	for _, p := range g.Pipes {
		g.Platforms = append(g.Platforms, Platform{Rect: Rect{X: p.X, Y: p.Y, W: p.W}, Kind: KindPipeTop})
	}

	for _, p := range g.Pipes {
		g.Solids = append(g.Solids, Solid{Rect: p.Rect, Kind: SolidPipe})
	}
	for _, s := range g.Stairs {
		g.Solids = append(g.Solids, Solid{Rect: s, Kind: SolidStair})
	}

	fp := layout.Flagpole
	g.Flagpole = Flagpole{
		X:              fp.X,
		Top:            groundY - fp.Height,
		Height:         fp.Height,
		CollisionWidth: fp.CollisionWidth,
		HitboxExtend:   fp.HitboxExtend,
		PlayerOffsetX:  fp.PlayerOffsetX,
		PlayerOffsetY:  fp.PlayerOffsetY,
		FlagWidth:      fp.FlagWidth,
		FlagHeight:     fp.FlagHeight,
	}

	c := layout.Castle
	g.Castle = Rect{X: c.X, Y: groundY - c.Height + c.BaseOffset, W: c.Width, H: c.Height}

	for _, h := range layout.Hills {
		g.Hills = append(g.Hills, Hill{X: h.X, Kind: h.Kind})
	}
	return g
}

// staircase builds the stepped pyramid: each row is two blocks narrower than
// the one below and stays centred on the base.
func staircase(s StaircaseSpec, tile, groundY float64) []Rect {
	var out []Rect
	center := s.Left + float64(s.BaseBlocks)*tile/2
	for row := 0; row < s.Rows; row++ {
		n := s.BaseBlocks - 2*row
		if n < 1 {
			break
		}
		y := groundY - float64(row+1)*tile
		left := center - float64(n)*tile/2
		for col := 0; col < n; col++ {
			out = append(out, Rect{X: left + float64(col)*tile, Y: y, W: tile, H: tile})
		}
	}
	return out
}

// End is the world x past which nothing is drawn.
func (g *Geometry) End() float64 {
	return g.Castle.Right()
}
