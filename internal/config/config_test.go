package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points HOME at an empty directory so a developer's own config
// does not leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPacmanEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, want %q", src, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultPacmanConfig()) {
		t.Errorf("embedded config differs from defaults:\n got %+v\nwant %+v", cfg, DefaultPacmanConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadPacmanCustomPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, "player:\n  speed: 0.1\ngameplay:\n  power_duration: 4s\n")

	cfg, src, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q", src)
	}
	if cfg.Player.Speed != 0.1 {
		t.Errorf("player.speed = %g, want 0.1", cfg.Player.Speed)
	}
	if cfg.Gameplay.PowerDuration != 4*time.Second {
		t.Errorf("power_duration = %v, want 4s", cfg.Gameplay.PowerDuration)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Player.MouthSpeed != 0.02 {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadPacmanCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, _, err := LoadPacman(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "player: [not, a, map\n")
	if _, _, err := LoadPacman(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "gameplay:\n  lives: 0\n")
	_, _, err := LoadPacman(invalid)
	if !IsInvalid(err) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadPacmanUserDirectory(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", FileName), "gameplay:\n  lives: 5\n")

	cfg, src, err := LoadPacman("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceUser || cfg.Gameplay.Lives != 5 {
		t.Errorf("got source %q lives %d, want user/5", src, cfg.Gameplay.Lives)
	}
}

func TestLoadPacmanSkipsBrokenUserFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", FileName), "timing:\n  tick_rate: -1\n")

	_, src, err := LoadPacman("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, want embedded fallback", src)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
	}{
		{"player speed", func(c *PacmanConfig) { c.Player.Speed = 0 }},
		{"mouth speed", func(c *PacmanConfig) { c.Player.MouthSpeed = -1 }},
		{"lives", func(c *PacmanConfig) { c.Gameplay.Lives = -2 }},
		{"power duration", func(c *PacmanConfig) { c.Gameplay.PowerDuration = 0 }},
		{"tick rate", func(c *PacmanConfig) { c.Timing.TickRate = 0 }},
		{"max ticks", func(c *PacmanConfig) { c.Timing.MaxTicksPerFrame = -1 }},
		{"scoring", func(c *PacmanConfig) { c.Scoring.Item = -10 }},
		{"ghost speed", func(c *PacmanConfig) { c.Ghosts[1].Speed = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !IsInvalid(err) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultPacmanConfig())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"power_duration: 10s", "tick_rate: 90", "name: blinky"} {
		if !strings.Contains(out, want) {
			t.Errorf("marshalled config missing %q:\n%s", want, out)
		}
	}
}

func TestTimingStep(t *testing.T) {
	if got := (TimingConfig{TickRate: 90}).Step(); got != time.Second/90 {
		t.Errorf("Step() = %v", got)
	}
	if got := (TimingConfig{}).Step(); got != 0 {
		t.Errorf("zero tick rate Step() = %v", got)
	}
}
