package system

import (
	"log"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

// DefaultSoundEvents maps world events to sound names.
var DefaultSoundEvents = map[string]string{
	ecs.EventJump:           "jump",
	ecs.EventBlockHit:       "bump",
	ecs.EventHeartCollected: "chime",
	ecs.EventFireworkBurst:  "pop",
	ecs.EventLevelComplete:  "fanfare",
}

// AudioSystem flags sounds for this frame's events, then plays and stops
// flagged players.
type AudioSystem struct {
	events map[string]string
}

func NewAudioSystem(events map[string]string) *AudioSystem {
	if events == nil {
		events = DefaultSoundEvents
	}
	return &AudioSystem{events: events}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pending := w.Events().Pending()

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for _, evt := range pending {
			name, ok := a.events[evt.Type]
			if !ok {
				continue
			}
			for i, n := range audioComp.Names {
				if n == name && i < len(audioComp.Play) {
					audioComp.Play[i] = true
				}
			}
		}

		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil {
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				if err := player.SetPosition(0); err != nil {
					log.Printf("audio: rewind %s: %v", audioComp.Names[i], err)
				}
				player.Play()
			}

			audioComp.Play[i] = false
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}
