package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate every sound is rendered and played at.
const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide Ebiten audio context. Ebiten allows
// only one, so it is created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// NewPCMPlayer wraps 16-bit little-endian stereo PCM in a player.
func NewPCMPlayer(pcm []byte) *audio.Player {
	return AudioContext().NewPlayerFromBytes(pcm)
}
