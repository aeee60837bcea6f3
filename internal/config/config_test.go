package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWordHunt("")
	if err != nil {
		t.Fatalf("LoadWordHunt failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultWordHuntConfig()) {
		t.Errorf("embedded YAML differs from hardcoded defaults:\n%+v\n%+v", cfg, DefaultWordHuntConfig())
	}
}

func TestDefaultPresetMatchesDefaults(t *testing.T) {
	cfg := DefaultWordHuntConfig()
	preset := cfg.Difficulty.Preset

	if got := StartLevelForPreset(preset); got != cfg.Difficulty.StartLevel {
		t.Errorf("preset %s starts at level %d, defaults start at %d", preset, got, cfg.Difficulty.StartLevel)
	}
	if got := PaletteForPreset(preset); got != cfg.Board.PaletteValue() {
		t.Errorf("preset %s uses palette %q, defaults use %q", preset, got.Name, cfg.Board.Palette)
	}
}

func TestValidateReportsEverySetting(t *testing.T) {
	cfg := DefaultWordHuntConfig()
	cfg.Difficulty.StartLevel = 0
	cfg.Board.Palette = "neon"
	cfg.Scheduler.SettleMS = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"start_level", "board.palette", "scheduler"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  palette: small\ndifficulty:\n  start_level: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadWordHunt(path)
	if err != nil {
		t.Fatalf("LoadWordHunt failed: %v", err)
	}
	if cfg.Board.PaletteValue() != core.PaletteSmall {
		t.Errorf("expected small palette, got %q", cfg.Board.Palette)
	}
	if cfg.Difficulty.StartLevel != 6 {
		t.Errorf("expected start level 6, got %d", cfg.Difficulty.StartLevel)
	}
	if cfg.Scoring.PerfectBonus != 500 {
		t.Errorf("unset keys should keep defaults, perfect bonus = %d", cfg.Scoring.PerfectBonus)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".wordhunt", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("board:\n  hud_top: 4\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadWordHunt("")
	if err != nil {
		t.Fatalf("LoadWordHunt failed: %v", err)
	}
	if cfg.Board.HUDTop != 4 {
		t.Errorf("expected hud_top 4 from the user config, got %d", cfg.Board.HUDTop)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadWordHunt(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "board: [\n"},
		{"bad palette", "board:\n  palette: neon\n"},
		{"bad level", "difficulty:\n  start_level: 0\n"},
		{"bad preset", "difficulty:\n  preset: nightmare\n"},
		{"negative hud", "board:\n  hud_bottom: -1\n"},
		{"negative length bonus", "scoring:\n  length_bonus_factor: -5\n"},
		{"negative speed bonus", "scoring:\n  speed_bonus_max: -1\n"},
		{"zero settle", "scheduler:\n  settle_ms: 0\n"},
		{"negative burst window", "scheduler:\n  burst_window_ms: -200\n"},
		{"negative retry", "scheduler:\n  min_retry_ms: -1\n"},
		{"zero two slot level", "scheduler:\n  two_slot_from_level: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := LoadWordHunt(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		level   int
		palette core.Palette
	}{
		{DifficultyEasy, 1, core.PaletteLarge},
		{DifficultyNormal, 4, core.PaletteMedium},
		{DifficultyHard, 8, core.PaletteSmall},
	}

	for _, tc := range tests {
		cfg := DefaultWordHuntConfig()
		ApplyPreset(&cfg, tc.preset)

		if cfg.Difficulty.StartLevel != tc.level {
			t.Errorf("%s: start level = %d, want %d", tc.preset, cfg.Difficulty.StartLevel, tc.level)
		}
		if cfg.Board.PaletteValue() != tc.palette {
			t.Errorf("%s: palette = %q, want %q", tc.preset, cfg.Board.Palette, tc.palette.Name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: preset config invalid: %v", tc.preset, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Hard ")
	if err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestSectionConversions(t *testing.T) {
	cfg := DefaultWordHuntConfig()

	sc := cfg.Scheduler.Core()
	if sc.SettleDelay != 200*time.Millisecond || sc.BurstWindow != 2*time.Second {
		t.Errorf("unexpected scheduler config: %+v", sc)
	}

	r := cfg.Scoring.Rules()
	if r.PerfectBonus != 500 || r.TimeBonusFactor != 2 {
		t.Errorf("unexpected rules: %+v", r)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvDB, "")
	os.Unsetenv(EnvDB)
	t.Setenv(EnvLogLevel, "warn")

	path := filepath.Join(t.TempDir(), ".env")
	data := strings.Join([]string{
		EnvDB + "=/tmp/wordhunt.db",
		EnvLogLevel + "=debug",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	env := LoadEnv(path)
	if env.DBPath != "/tmp/wordhunt.db" {
		t.Errorf("expected db path from .env, got %q", env.DBPath)
	}
	if env.LogLevel != "warn" {
		t.Errorf(".env must not override the environment, got %q", env.LogLevel)
	}
}

func TestOr(t *testing.T) {
	if Or("", "b") != "b" || Or("a", "b") != "a" {
		t.Error("Or should prefer the first non-empty value")
	}
}
