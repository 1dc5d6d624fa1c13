package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/memorylane/ecs"
	"github.com/milk9111/memorylane/ecs/component"
)

type fakePlayer struct {
	plays   int
	pauses  int
	rewinds int
	volume  float64
	playing bool
	seekErr error
}

func (p *fakePlayer) Play() {
	p.plays++
	p.playing = true
}

func (p *fakePlayer) Pause() {
	p.pauses++
	p.playing = false
}

func (p *fakePlayer) IsPlaying() bool { return p.playing }

func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }

func (p *fakePlayer) SetPosition(time.Duration) error {
	p.rewinds++
	return p.seekErr
}

func newAudioWorld(t *testing.T, names ...string) (*ecs.World, *component.Audio, []*fakePlayer) {
	t.Helper()
	w := ecs.NewWorld()
	fakes := make([]*fakePlayer, len(names))
	players := make([]component.SoundPlayer, len(names))
	vol := make([]float64, len(names))
	for i := range names {
		fakes[i] = &fakePlayer{}
		players[i] = fakes[i]
		vol[i] = 0.5
	}
	audio := &component.Audio{
		Names:   names,
		Players: players,
		Volume:  vol,
		Play:    make([]bool, len(names)),
		Stop:    make([]bool, len(names)),
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), audio); err != nil {
		t.Fatalf("add audio: %v", err)
	}
	return w, audio, fakes
}

func TestAudioPlaysMappedEvents(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  []int
	}{
		{name: "jump", event: ecs.EventJump, want: []int{1, 0, 0}},
		{name: "block hit", event: ecs.EventBlockHit, want: []int{0, 1, 0}},
		{name: "heart", event: ecs.EventHeartCollected, want: []int{0, 0, 1}},
		{name: "unmapped", event: ecs.EventFlagReached, want: []int{0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, fakes := newAudioWorld(t, "jump", "bump", "chime")
			w.Events().Push(ecs.Event{Type: tc.event})
			NewAudioSystem(nil).Update(w)
			for i, f := range fakes {
				if f.plays != tc.want[i] {
					t.Fatalf("player %d plays = %d, want %d", i, f.plays, tc.want[i])
				}
				if f.plays > 0 && (f.rewinds != 1 || f.volume != 0.5) {
					t.Fatalf("player %d not rewound at volume: rewinds=%d volume=%v", i, f.rewinds, f.volume)
				}
			}
		})
	}
}

func TestAudioLeavesEventsQueued(t *testing.T) {
	w, _, _ := newAudioWorld(t, "jump")
	w.Events().Push(ecs.Event{Type: ecs.EventJump})
	NewAudioSystem(nil).Update(w)
	if got := len(w.Events().Drain()); got != 1 {
		t.Fatalf("events after audio = %d, want 1", got)
	}
}

func TestAudioRepeatedEventsPlayOnce(t *testing.T) {
	w, audio, fakes := newAudioWorld(t, "pop")
	w.Events().Push(ecs.Event{Type: ecs.EventFireworkBurst, Data: 30})
	w.Events().Push(ecs.Event{Type: ecs.EventFireworkBurst, Data: 40})
	NewAudioSystem(nil).Update(w)
	if fakes[0].plays != 1 {
		t.Fatalf("plays = %d, want 1", fakes[0].plays)
	}
	if audio.Play[0] {
		t.Fatal("play flag not cleared")
	}
}

func TestAudioStopPausesPlaying(t *testing.T) {
	w, audio, fakes := newAudioWorld(t, "fanfare", "pop")
	fakes[0].playing = true
	audio.Stop[0] = true
	audio.Stop[1] = true
	NewAudioSystem(nil).Update(w)
	if fakes[0].pauses != 1 {
		t.Fatalf("pauses = %d, want 1", fakes[0].pauses)
	}
	if fakes[1].pauses != 0 {
		t.Fatal("idle player paused")
	}
	if audio.Stop[0] || audio.Stop[1] {
		t.Fatal("stop flags not cleared")
	}
}

func TestAudioRewindErrorStillPlays(t *testing.T) {
	w, _, fakes := newAudioWorld(t, "jump")
	fakes[0].seekErr = errors.New("seek")
	w.Events().Push(ecs.Event{Type: ecs.EventJump})
	NewAudioSystem(nil).Update(w)
	if fakes[0].plays != 1 {
		t.Fatalf("plays = %d, want 1", fakes[0].plays)
	}
}

func TestAudioCustomMapAndNilPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Names:   []string{"win"},
		Players: []component.SoundPlayer{nil},
		Play:    []bool{false},
		Stop:    []bool{false},
	}); err != nil {
		t.Fatalf("add audio: %v", err)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventLevelComplete})
	NewAudioSystem(map[string]string{ecs.EventLevelComplete: "win"}).Update(w)
	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if audio.Play[0] {
		t.Fatal("play flag not cleared for nil player")
	}
}
