package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"physics", func(t *testing.T) {
			spec, err := LoadPhysicsSpec()
			if err != nil {
				t.Fatal(err)
			}
			if spec.Gravity != 0.6 || spec.JumpStrength != -12 || spec.ScrollSpeed != 4 {
				t.Fatalf("unexpected physics spec %+v", spec)
			}
			if spec.Heart.ReleaseGap != 8 || spec.Heart.CollectDX != 28 {
				t.Fatalf("unexpected heart spec %+v", spec.Heart)
			}
		}},
		{"fireworks", func(t *testing.T) {
			spec, err := LoadFireworkSpec()
			if err != nil {
				t.Fatal(err)
			}
			if spec.SpawnInterval != 30 || spec.MaxLife != 100 || spec.Script == "" {
				t.Fatalf("unexpected firework spec %+v", spec)
			}
		}},
		{"birds", func(t *testing.T) {
			spec, err := LoadBirdSpec()
			if err != nil {
				t.Fatal(err)
			}
			if spec.Count != 14 || spec.Color == nil {
				t.Fatalf("unexpected bird spec %+v", spec)
			}
		}},
		{"memories", func(t *testing.T) {
			memories, err := LoadMemories()
			if err != nil {
				t.Fatal(err)
			}
			if len(memories) != 7 {
				t.Fatalf("expected 7 memories, got %d", len(memories))
			}
			for i, m := range memories {
				if m.Title == "" || m.Text == "" {
					t.Fatalf("memory %d is empty", i)
				}
			}
		}},
		{"render", func(t *testing.T) {
			spec, err := LoadRenderSpec()
			if err != nil {
				t.Fatal(err)
			}
			if len(spec.FlagFrames) != 5 || len(spec.RunFrames) != 4 {
				t.Fatalf("unexpected frame counts flag=%d run=%d", len(spec.FlagFrames), len(spec.RunFrames))
			}
			if _, ok := spec.Pipes["tall"]; !ok {
				t.Fatalf("missing tall pipe rect")
			}
		}},
		{"sounds", func(t *testing.T) {
			spec, err := LoadSoundsSpec()
			if err != nil {
				t.Fatal(err)
			}
			if spec.SampleRate != 44100 || len(spec.Sounds) != 5 {
				t.Fatalf("unexpected sounds spec %+v", spec)
			}
		}},
		{"script", func(t *testing.T) {
			data, err := LoadScript("fireworks.tengo")
			if err != nil || len(data) == 0 {
				t.Fatalf("expected firework script, err=%v", err)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.check)
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadSpec[PhysicsSpec]("does_not_exist.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"prefab_plain", cleanPrefabPath, "physics.yaml", "physics.yaml"},
		{"prefab_prefixed", cleanPrefabPath, "prefabs/physics.yaml", "physics.yaml"},
		{"prefab_empty", cleanPrefabPath, "", ""},
		{"script_plain", cleanScriptPath, "fireworks.tengo", "scripts/fireworks.tengo"},
		{"script_full", cleanScriptPath, "prefabs/scripts/fireworks.tengo", "scripts/fireworks.tengo"},
		{"script_dir", cleanScriptPath, "scripts/fireworks.tengo", "scripts/fireworks.tengo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#2C3E50"`, color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}, false},
		{"rgba_no_hash", `"FF32504D"`, color.NRGBA{R: 0xFF, G: 0x32, B: 0x50, A: 0x4D}, false},
		{"short", `"#FFF"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2]`, color.NRGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c.Color != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, c.Color)
			}
		})
	}
}

func TestRenderSpecColorFallback(t *testing.T) {
	var nilSpec *RenderSpec
	fallback := color.NRGBA{R: 1, A: 255}
	if nilSpec.Color("sky_top", fallback) != fallback {
		t.Fatalf("nil spec should return fallback")
	}
	spec, err := LoadRenderSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Color("sky_top", fallback) == fallback {
		t.Fatalf("expected palette color for sky_top")
	}
	if spec.Color("nope", fallback) != fallback {
		t.Fatalf("expected fallback for unknown name")
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "physics.yaml")
	if err := os.WriteFile(target, []byte("gravity: 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "physics.yaml" {
			t.Fatalf("expected physics.yaml event, got %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestReloadable(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("prefabs", PhysicsFile), true},
		{FireworksFile, true},
		{RenderFile, true},
		{MemoriesFile, true},
		{filepath.Join("prefabs", "scripts", FireworkScriptFile), true},
		{BirdsFile, false},
		{SoundsFile, false},
		{"other.tengo", false},
		{"notes.yaml", false},
		{"physics.yaml.swp", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Reloadable(tt.path); got != tt.want {
				t.Fatalf("Reloadable(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
