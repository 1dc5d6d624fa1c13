package sfx

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/milk9111/memorylane/prefabs"
)

func TestParseWave(t *testing.T) {
	tests := []struct {
		in   string
		want WaveType
	}{
		{"sine", WaveSine},
		{"Square", WaveSquare},
		{" saw ", WaveSaw},
		{"noise", WaveNoise},
		{"", WaveSine},
		{"triangle", WaveSine},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseWave(tt.in); got != tt.want {
				t.Fatalf("ParseWave(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 0, 10*time.Millisecond, WaveSquare, rate, nil)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if n != 10 || !ok {
		t.Fatalf("first stream = (%d, %v), want (10, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Fatalf("drained stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 20 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSaw, rate, nil)
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, 32)
	n, _ := env.Stream(samples)
	if n != 20 {
		t.Fatalf("n = %d, want 20", n)
	}
	// A zero-frequency saw holds -1, so the envelope is visible directly.
	if samples[0][0] != 0 {
		t.Fatalf("attack should start silent, got %f", samples[0][0])
	}
	if samples[10][0] != -1 {
		t.Fatalf("sustain should be full scale, got %f", samples[10][0])
	}
	if samples[19][0] >= 0 || samples[19][0] < -0.25 {
		t.Fatalf("release tail = %f", samples[19][0])
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		spec  prefabs.SoundSpec
		bytes int
	}{
		{"sweep", prefabs.SoundSpec{Name: "jump", Wave: "square", Freq: 330, FreqEnd: 660, Duration: 100, Attack: 4, Release: 60, Volume: 0.25}, 4410 * 4},
		{"notes", prefabs.SoundSpec{Name: "chime", Wave: "sine", Notes: []float64{660, 880}, Duration: 100, Attack: 5, Release: 20, Volume: 0.5}, 4410 * 4},
		{"noise", prefabs.SoundSpec{Name: "pop", Wave: "noise", Duration: 10, Release: 5, Volume: 0.2}, 441 * 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm, err := Render(tt.spec, 44100, 1)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(pcm) != tt.bytes {
				t.Fatalf("len = %d, want %d", len(pcm), tt.bytes)
			}
		})
	}
}

func TestRenderDeterministicNoise(t *testing.T) {
	spec := prefabs.SoundSpec{Name: "pop", Wave: "noise", Duration: 20, Volume: 1}
	a, _ := Render(spec, 44100, 7)
	b, _ := Render(spec, 44100, 7)
	if string(a) != string(b) {
		t.Fatalf("same seed should render identical noise")
	}
}

func TestRenderEmpty(t *testing.T) {
	_, err := Render(prefabs.SoundSpec{Name: "nothing"}, 44100, 1)
	if !errors.Is(err, ErrEmptySound) {
		t.Fatalf("err = %v, want ErrEmptySound", err)
	}
}

func TestEmbeddedSoundsRender(t *testing.T) {
	spec, err := prefabs.LoadSoundsSpec()
	if err != nil {
		t.Fatalf("LoadSoundsSpec: %v", err)
	}
	for _, s := range spec.Sounds {
		t.Run(s.Name, func(t *testing.T) {
			pcm, err := Render(s, spec.SampleRate, 1)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("pcm length %d is not whole stereo frames", len(pcm))
			}
		})
	}
}
