// Package config provides YAML-based configuration loading and difficulty
// presets for Word Hunt.
package config

import (
	"time"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
)

// WordHuntConfig contains all configuration for Word Hunt.
type WordHuntConfig struct {
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SchedulerConfig defines word pacing parameters.
type SchedulerConfig struct {
	SettleMS         int `yaml:"settle_ms"`           // Pending phase before a word is clickable
	BurstWindowMS    int `yaml:"burst_window_ms"`     // Window after a find with boosted surfacing
	TwoSlotFromLevel int `yaml:"two_slot_from_level"` // First level with two visible words
	MinRetryMS       int `yaml:"min_retry_ms"`
}

// ScoringConfig defines score constants.
type ScoringConfig struct {
	TimeBonusFactor   float64 `yaml:"time_bonus_factor"`
	PerfectBonus      int     `yaml:"perfect_bonus"`
	LengthBonusFactor int     `yaml:"length_bonus_factor"`
	SpeedBonusMax     int     `yaml:"speed_bonus_max"`
}

// BoardConfig defines the letter grid layout.
type BoardConfig struct {
	HUDTop    int    `yaml:"hud_top"`    // Terminal rows reserved above the grid
	HUDBottom int    `yaml:"hud_bottom"` // Terminal rows reserved below the grid
	Palette   string `yaml:"palette"`    // "large", "medium" or "small"
}

// DifficultyConfig defines where a run starts.
type DifficultyConfig struct {
	StartLevel int              `yaml:"start_level"`
	Preset     DifficultyPreset `yaml:"preset"`
}

// Core converts the scheduler section into scheduler pacing.
func (c SchedulerConfig) Core() core.SchedulerConfig {
	return core.SchedulerConfig{
		SettleDelay:      time.Duration(c.SettleMS) * time.Millisecond,
		BurstWindow:      time.Duration(c.BurstWindowMS) * time.Millisecond,
		TwoSlotFromLevel: c.TwoSlotFromLevel,
		MinRetryDelay:    time.Duration(c.MinRetryMS) * time.Millisecond,
	}
}

// Rules converts the scoring section into scoring rules.
func (c ScoringConfig) Rules() scoring.Rules {
	return scoring.Rules{
		TimeBonusFactor:   c.TimeBonusFactor,
		PerfectBonus:      c.PerfectBonus,
		LengthBonusFactor: c.LengthBonusFactor,
		SpeedBonusMax:     c.SpeedBonusMax,
	}
}

// PaletteValue resolves the configured palette, falling back to large.
func (c BoardConfig) PaletteValue() core.Palette {
	p, _ := core.PaletteByName(c.Palette)
	return p
}
