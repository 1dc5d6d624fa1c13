package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the layout shipped with the game.
const DefaultLevel = "memorylane.json"

var (
	ErrNoHeartRows      = errors.New("levels: layout has no heart rows")
	ErrBadQuestionIndex = errors.New("levels: question block index outside its row")
)

// Layout is the authored level description. Vertical offsets are relative to
// the ground line, which is only known once the screen height is.
type Layout struct {
	Tile        float64 `json:"tile"`
	GroundStrip float64 `json:"ground_strip"`
	MinX        float64 `json:"min_x"`

	PipeWidth   float64            `json:"pipe_width"`
	PipeHeights map[string]float64 `json:"pipe_heights"`
	Pipes       []PipeSpec         `json:"pipes"`

	Bricks    []BrickSpec    `json:"bricks"`
	HeartRows []HeartRowSpec `json:"heart_rows"`
	Staircase StaircaseSpec  `json:"staircase"`
	Flagpole  FlagpoleSpec   `json:"flagpole"`
	Castle    CastleSpec     `json:"castle"`

	Clouds []float64  `json:"clouds,omitempty"`
	Hills  []HillSpec `json:"hills,omitempty"`
}

type PipeSpec struct {
	X    float64 `json:"x"`
	Type string  `json:"type"`
}

type BrickSpec struct {
	X    float64 `json:"x"`
	YOff float64 `json:"y_off"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

type HeartRowSpec struct {
	X          float64 `json:"x"`
	YOff       float64 `json:"y_off"`
	Blocks     int     `json:"blocks"`
	HeartIndex int     `json:"heart_index"`
}

type StaircaseSpec struct {
	Left       float64 `json:"left"`
	BaseBlocks int     `json:"base_blocks"`
	Rows       int     `json:"rows"`
}

type FlagpoleSpec struct {
	X              float64 `json:"x"`
	Height         float64 `json:"height"`
	CollisionWidth float64 `json:"collision_width"`
	HitboxExtend   float64 `json:"hitbox_extend"`
	PlayerOffsetX  float64 `json:"player_offset_x"`
	PlayerOffsetY  float64 `json:"player_offset_y"`
	FlagWidth      float64 `json:"flag_width"`
	FlagHeight     float64 `json:"flag_height"`
}

type CastleSpec struct {
	X          float64 `json:"x"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	BaseOffset float64 `json:"base_offset"`
}

type HillSpec struct {
	X    float64 `json:"x"`
	Kind string  `json:"kind"`
}

// LoadLayout reads a layout from the embedded level files.
func LoadLayout(name string) (*Layout, error) {
	return LoadLayoutFromFS(LevelsFS, name)
}

func LoadLayoutFromFS(fsys fs.FS, name string) (*Layout, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := layout.check(); err != nil {
		return nil, fmt.Errorf("levels: check %s: %w", name, err)
	}
	return &layout, nil
}

func (l *Layout) check() error {
	if len(l.HeartRows) == 0 {
		return ErrNoHeartRows
	}
	for i, row := range l.HeartRows {
		if row.HeartIndex < 0 || row.HeartIndex >= row.Blocks {
			return fmt.Errorf("heart row %d: %w", i, ErrBadQuestionIndex)
		}
	}
	for _, p := range l.Pipes {
		if _, ok := l.PipeHeights[p.Type]; !ok {
			return fmt.Errorf("pipe at %.0f: unknown type %q", p.X, p.Type)
		}
	}
	return nil
}
