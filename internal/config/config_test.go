package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseDodge(defaultDodgeYAML)
	if err != nil {
		t.Fatalf("parseDodge(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Errorf("embedded YAML and DefaultDodgeConfig() differ:\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultPaletteHasTwelveColors(t *testing.T) {
	if got := len(DefaultDodgeConfig().Palette); got != 12 {
		t.Errorf("palette size = %d, expected 12", got)
	}
}

func TestLoadDodgeCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := "ball:\n  speed: 8\nlevels:\n  start: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Ball.Speed != 8 {
		t.Errorf("Ball.Speed = %g, expected 8", cfg.Ball.Speed)
	}
	if cfg.Ball.Radius != 10 {
		t.Errorf("unset keys should keep defaults, Ball.Radius = %g", cfg.Ball.Radius)
	}
	if cfg.Levels.Start != 2 || cfg.Levels.Max != 3 {
		t.Errorf("Levels = %+v, expected start 2 max 3", cfg.Levels)
	}
}

func TestLoadDodgeMissingFile(t *testing.T) {
	_, err := LoadDodge(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry package prefix, got %q", err)
	}
}

func TestLoadDodgeInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := "levels:\n  start: 7\ninput:\n  key_repeat_delay_ms: 0\npalette: []\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := LoadDodge(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"levels.start", "key_repeat_delay_ms", "palette"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s, got %q", field, err)
		}
	}
}

func TestLoadDodgeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadDodgeLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "dodge.yaml"), []byte("targets:\n  radius: 4\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge(\"\") failed: %v", err)
	}
	if cfg.Targets.Radius != 4 {
		t.Errorf("Targets.Radius = %g, expected 4", cfg.Targets.Radius)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestApplyDodgePreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		speedScale float64
		advance    bool
	}{
		{"", 1.0, true},
		{DifficultyEasy, 0.75, true},
		{DifficultyNormal, 1.0, true},
		{DifficultyHard, 1.5, true},
		{DifficultyFixed, 1.0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			ApplyDodgePreset(&cfg, tc.preset)
			if cfg.Obstacles.SpeedScale != tc.speedScale {
				t.Errorf("SpeedScale = %g, expected %g", cfg.Obstacles.SpeedScale, tc.speedScale)
			}
			if cfg.Levels.Advance != tc.advance {
				t.Errorf("Advance = %v, expected %v", cfg.Levels.Advance, tc.advance)
			}
		})
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("dodge")) == 0 {
		t.Error("expected embedded YAML for dodge")
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}
