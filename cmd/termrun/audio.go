package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/memorylane/ecs/component"
	"github.com/milk9111/memorylane/prefabs"
	"github.com/milk9111/memorylane/sfx"
)

const sampleRate = beep.SampleRate(44100)

// speakerPlayer plays a pre-rendered buffer through the beep speaker. Each
// Play starts a fresh stream from the top.
type speakerPlayer struct {
	buf     *beep.Buffer
	volume  float64
	ctrl    *beep.Ctrl
	playing atomic.Bool
}

func (p *speakerPlayer) Play() {
	s := beep.Streamer(p.buf.Streamer(0, p.buf.Len()))
	if p.volume != 1 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume), Silent: p.volume <= 0}
	}
	ctrl := &beep.Ctrl{Streamer: s}
	p.playing.Store(true)
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() { p.playing.Store(false) })))

	speaker.Lock()
	p.ctrl = ctrl
	speaker.Unlock()
}

func (p *speakerPlayer) Pause() {
	speaker.Lock()
	if p.ctrl != nil {
		p.ctrl.Paused = true
	}
	speaker.Unlock()
	p.playing.Store(false)
}

func (p *speakerPlayer) IsPlaying() bool { return p.playing.Load() }

func (p *speakerPlayer) SetVolume(volume float64) { p.volume = volume }

func (p *speakerPlayer) SetPosition(time.Duration) error { return nil }

// openSpeaker initialises the speaker and renders every sound into a
// buffer. Sounds that fail to build are skipped and reported together.
func openSpeaker(spec *prefabs.SoundsSpec) ([]string, []component.SoundPlayer, error) {
	if spec == nil {
		return nil, nil, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, nil, fmt.Errorf("termrun: init speaker: %w", err)
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	var (
		names   []string
		players []component.SoundPlayer
		errs    []error
	)
	for i, s := range spec.Sounds {
		st, err := sfx.Streamer(s, sampleRate, rand.New(rand.NewSource(int64(i+1))))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(st)
		names = append(names, s.Name)
		players = append(players, &speakerPlayer{buf: buf, volume: 1})
	}
	return names, players, errors.Join(errs...)
}
