package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec and script file names under prefabs/.
const (
	PhysicsFile        = "physics.yaml"
	FireworksFile      = "fireworks.yaml"
	BirdsFile          = "birds.yaml"
	MemoriesFile       = "memories.yaml"
	RenderFile         = "render.yaml"
	SoundsFile         = "sounds.yaml"
	FireworkScriptFile = "fireworks.tengo"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PhysicsSpec holds the player tuning and collision tolerances.
type PhysicsSpec struct {
	Gravity        float64 `yaml:"gravity"`
	JumpStrength   float64 `yaml:"jump_strength"`
	ScrollSpeed    float64 `yaml:"scroll_speed"`
	FlagSlideSpeed float64 `yaml:"flag_slide_speed"`
	CameraLead     float64 `yaml:"camera_lead"`

	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`

	LandAbove      float64 `yaml:"land_tolerance_above"`
	LandBelow      float64 `yaml:"land_tolerance_below"`
	HeadHit        float64 `yaml:"head_hit_tolerance"`
	HeadBouncePush float64 `yaml:"head_bounce_push"`

	Heart HeartSpec `yaml:"heart"`
}

type HeartSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ReleaseGap     float64 `yaml:"release_gap"`
	CollectDX      float64 `yaml:"collect_dx"`
	CollectDY      float64 `yaml:"collect_dy"`
	HeartbeatSpeed float64 `yaml:"heartbeat_speed"`
}

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec](PhysicsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// FireworkSpec tunes burst spawning and particle motion.
type FireworkSpec struct {
	Gravity       float64 `yaml:"gravity"`
	Drag          float64 `yaml:"drag"`
	SpawnInterval int     `yaml:"spawn_interval"`

	MinParticles   int     `yaml:"min_particles"`
	ExtraParticles int     `yaml:"extra_particles"`
	MinSpeed       float64 `yaml:"min_speed"`
	ExtraSpeed     float64 `yaml:"extra_speed"`
	MinLife        int     `yaml:"min_life"`
	ExtraLife      int     `yaml:"extra_life"`
	MaxLife        int     `yaml:"max_life"`
	MinSize        float64 `yaml:"min_size"`
	ExtraSize      float64 `yaml:"extra_size"`
	HueSpread      float64 `yaml:"hue_spread"`
	AngleJitter    float64 `yaml:"angle_jitter"`

	XMinFrac     float64 `yaml:"x_min_frac"`
	XRangeFrac   float64 `yaml:"x_range_frac"`
	YMinOffset   float64 `yaml:"y_min_offset"`
	YExtraOffset float64 `yaml:"y_extra_offset"`

	// Script is an optional choreography script under scripts/.
	Script string `yaml:"script"`
}

func LoadFireworkSpec() (*FireworkSpec, error) {
	spec, err := LoadSpec[FireworkSpec](FireworksFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BirdSpec struct {
	Count       int        `yaml:"count"`
	Parallax    float64    `yaml:"parallax"`
	YMin        float64    `yaml:"y_min"`
	YRange      float64    `yaml:"y_range"`
	DriftMin    float64    `yaml:"drift_min"`
	DriftExtra  float64    `yaml:"drift_extra"`
	FlapMin     float64    `yaml:"flap_min"`
	FlapExtra   float64    `yaml:"flap_extra"`
	BobAmpMin   float64    `yaml:"bob_amp_min"`
	BobAmpExtra float64    `yaml:"bob_amp_extra"`
	BobFreq     float64    `yaml:"bob_freq"`
	SizeMin     float64    `yaml:"size_min"`
	SizeExtra   float64    `yaml:"size_extra"`
	Spacing     float64    `yaml:"spacing"`
	Stroke      float32    `yaml:"stroke"`
	Color       *YAMLColor `yaml:"color"`
}

func LoadBirdSpec() (*BirdSpec, error) {
	spec, err := LoadSpec[BirdSpec](BirdsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type Memory struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type MemoriesSpec struct {
	Memories []Memory `yaml:"memories"`
}

// LoadMemories returns the vignettes in heart id order.
func LoadMemories() ([]Memory, error) {
	spec, err := LoadSpec[MemoriesSpec](MemoriesFile)
	if err != nil {
		return nil, err
	}
	return spec.Memories, nil
}

// RectSpec is a source rectangle on a sprite sheet.
type RectSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// RenderSpec holds sheet coordinates, palette and draw tuning.
type RenderSpec struct {
	AnimFrameDivisor int        `yaml:"anim_frame_divisor"`
	RunFrames        []RectSpec `yaml:"run_frames"`

	// RunFramesFromBottom means run frame Y is measured from the sheet bottom.
	RunFramesFromBottom bool `yaml:"run_frames_from_bottom"`

	Pipes        map[string]RectSpec `yaml:"pipes"`
	PipeScale    float64             `yaml:"pipe_scale"`
	Castle       RectSpec            `yaml:"castle"`
	FlagFrames   []RectSpec          `yaml:"flag_frames"`
	FlagShaftX   float64             `yaml:"flag_shaft_x"`
	Hills        map[string]RectSpec `yaml:"hills"`
	HillScale    float64             `yaml:"hill_scale"`
	HillOverlap  float64             `yaml:"hill_overlap"`
	HillParallax float64             `yaml:"hill_parallax"`

	CloudLeft     RectSpec `yaml:"cloud_left"`
	CloudMid      RectSpec `yaml:"cloud_mid"`
	CloudRight    RectSpec `yaml:"cloud_right"`
	CloudScale    float64  `yaml:"cloud_scale"`
	CloudParallax float64  `yaml:"cloud_parallax"`
	CloudY        float64  `yaml:"cloud_y"`

	Heartbeat HeartbeatSpec `yaml:"heartbeat"`
	Fireworks FireworkLook  `yaml:"fireworks"`

	Palette map[string]*YAMLColor `yaml:"palette"`
}

type HeartbeatSpec struct {
	FirstWindow    float64 `yaml:"first_window"`
	FirstAmp       float64 `yaml:"first_amp"`
	SecondEnd      float64 `yaml:"second_end"`
	SecondDuration float64 `yaml:"second_duration"`
	SecondAmp      float64 `yaml:"second_amp"`
	GlowBaseR      float64 `yaml:"glow_base_r"`
	GlowInnerR     float64 `yaml:"glow_inner_r"`
	DisplayScale   float64 `yaml:"display_scale"`
}

type FireworkLook struct {
	OffscreenBuffer float64 `yaml:"offscreen_buffer"`
	AlphaMin        float64 `yaml:"alpha_min"`
	AlphaRange      float64 `yaml:"alpha_range"`
	BaseLightness   float64 `yaml:"base_lightness"`
	BrightLightness float64 `yaml:"bright_lightness"`
	GlowAlpha       float64 `yaml:"glow_alpha"`
	GlowSize        float64 `yaml:"glow_size"`
}

func LoadRenderSpec() (*RenderSpec, error) {
	spec, err := LoadSpec[RenderSpec](RenderFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Color returns the named palette entry or fallback.
func (r *RenderSpec) Color(name string, fallback color.Color) color.Color {
	if r == nil {
		return fallback
	}
	if c, ok := r.Palette[name]; ok && c != nil && c.Color != nil {
		return c.Color
	}
	return fallback
}

// SoundSpec describes one synthesized sound effect.
type SoundSpec struct {
	Name     string  `yaml:"name"`
	Wave     string  `yaml:"wave"`
	Freq     float64 `yaml:"freq"`
	FreqEnd  float64 `yaml:"freq_end"`
	Duration float64 `yaml:"duration_ms"`
	Attack   float64 `yaml:"attack_ms"`
	Release  float64 `yaml:"release_ms"`
	Volume   float64 `yaml:"volume"`

	// Notes, when set, plays a short arpeggio instead of a single sweep.
	Notes []float64 `yaml:"notes"`
}

type SoundsSpec struct {
	SampleRate int         `yaml:"sample_rate"`
	Sounds     []SoundSpec `yaml:"sounds"`
}

func LoadSoundsSpec() (*SoundsSpec, error) {
	spec, err := LoadSpec[SoundsSpec](SoundsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
