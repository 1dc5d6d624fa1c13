package component

import "time"

// SoundPlayer is the subset of *audio.Player the audio system drives.
type SoundPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	SetPosition(offset time.Duration) error
}

type Audio struct {
	Names   []string
	Players []SoundPlayer
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()
