package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

// ConfigFile is the config file name looked up in the config directories.
const ConfigFile = "wordhunt.yaml"

// LoadWordHunt loads Word Hunt configuration.
// Search order: customPath -> ~/.wordhunt/configs/wordhunt.yaml -> ./configs/wordhunt.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadWordHunt(customPath string) (WordHuntConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultWordHuntConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultWordHuntConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultWordHuntYAML)
	if err != nil {
		return DefaultWordHuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (WordHuntConfig, error) {
	cfg := DefaultWordHuntConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c WordHuntConfig) Validate() error {
	var errs []error
	if c.Difficulty.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("difficulty.start_level must be at least 1, got %d", c.Difficulty.StartLevel))
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, fmt.Errorf("difficulty.preset: %w", err))
		}
	}
	if _, ok := core.PaletteByName(c.Board.Palette); !ok {
		errs = append(errs, fmt.Errorf("board.palette: unknown palette %q", c.Board.Palette))
	}
	if c.Board.HUDTop < 0 || c.Board.HUDBottom < 0 {
		errs = append(errs, errors.New("board: hud rows must not be negative"))
	}
	if c.Scoring.TimeBonusFactor < 0 || c.Scoring.PerfectBonus < 0 ||
		c.Scoring.LengthBonusFactor < 0 || c.Scoring.SpeedBonusMax < 0 {
		errs = append(errs, errors.New("scoring: bonuses must not be negative"))
	}
	if c.Scheduler.SettleMS <= 0 || c.Scheduler.BurstWindowMS <= 0 || c.Scheduler.MinRetryMS <= 0 {
		errs = append(errs, errors.New("scheduler: settle_ms, burst_window_ms and min_retry_ms must be positive"))
	}
	if c.Scheduler.TwoSlotFromLevel < 1 {
		errs = append(errs, fmt.Errorf("scheduler.two_slot_from_level must be at least 1, got %d", c.Scheduler.TwoSlotFromLevel))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordhunt", "configs", filename)
}
