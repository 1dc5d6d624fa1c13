package entity

import (
	"fmt"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

// NewAudio creates the persistent sound bank entity. names and players are
// parallel; a nil player is skipped at play time.
func NewAudio(w *ecs.World, names []string, players []component.SoundPlayer, volume float64) (ecs.Entity, error) {
	if len(names) != len(players) {
		return 0, fmt.Errorf("audio: %d names for %d players", len(names), len(players))
	}
	vol := make([]float64, len(names))
	for i := range vol {
		vol[i] = volume
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Names:   append([]string(nil), names...),
		Players: append([]component.SoundPlayer(nil), players...),
		Volume:  vol,
		Play:    make([]bool, len(names)),
		Stop:    make([]bool, len(names)),
	}); err != nil {
		return 0, fmt.Errorf("audio: add audio component: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "audio"}); err != nil {
		return 0, fmt.Errorf("audio: add persistent: %w", err)
	}
	return e, nil
}
