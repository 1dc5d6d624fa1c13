package sfx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/prefabs"
)

var ErrEmptySound = errors.New("sfx: sound has no duration")

// Streamer builds the beep stream for one sound. A sound with notes plays
// them in sequence, each with its own envelope.
func Streamer(spec prefabs.SoundSpec, rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	if spec.Duration <= 0 {
		return nil, fmt.Errorf("sfx: build %s: %w", spec.Name, ErrEmptySound)
	}
	wave := ParseWave(spec.Wave)
	total := ms(spec.Duration)

	if len(spec.Notes) == 0 {
		osc := NewOscillator(spec.Freq, spec.FreqEnd, total, wave, rate, rng)
		shaped := NewEnvelope(osc, total, ms(spec.Attack), ms(spec.Release), rate)
		return newVolume(shaped, spec.Volume), nil
	}

	step := total / time.Duration(len(spec.Notes))
	release := min(ms(spec.Release), step/2)
	notes := make([]beep.Streamer, 0, len(spec.Notes))
	for _, freq := range spec.Notes {
		osc := NewOscillator(freq, 0, step, wave, rate, rng)
		notes = append(notes, NewEnvelope(osc, step, ms(spec.Attack), release, rate))
	}
	return newVolume(beep.Seq(notes...), spec.Volume), nil
}

// RenderPCM drains s into 16-bit little-endian stereo PCM, the format Ebiten
// players consume.
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}

// Render synthesizes one sound into PCM.
func Render(spec prefabs.SoundSpec, sampleRate int, seed int64) ([]byte, error) {
	if sampleRate <= 0 {
		sampleRate = assets.SampleRate
	}
	s, err := Streamer(spec, beep.SampleRate(sampleRate), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return RenderPCM(s), nil
}

// Bank holds the rendered players, indexed alongside their names.
type Bank struct {
	Names   []string
	Players []component.SoundPlayer
}

// NewBank renders every sound in spec and wraps it in an Ebiten player.
// Sounds that fail to build are logged by the caller through the error and
// skipped.
func NewBank(spec *prefabs.SoundsSpec) (*Bank, error) {
	if spec == nil {
		return &Bank{}, nil
	}
	if spec.SampleRate != 0 && spec.SampleRate != assets.SampleRate {
		return nil, fmt.Errorf("sfx: sample rate %d: must be %d", spec.SampleRate, assets.SampleRate)
	}

	bank := &Bank{}
	var errs []error
	for i, s := range spec.Sounds {
		pcm, err := Render(s, assets.SampleRate, int64(i+1))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bank.Names = append(bank.Names, s.Name)
		bank.Players = append(bank.Players, assets.NewPCMPlayer(pcm))
	}
	return bank, errors.Join(errs...)
}
