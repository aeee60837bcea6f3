package config

import (
	_ "embed"
)

//go:embed defaults/wordhunt.yaml
var defaultWordHuntYAML []byte

// DefaultWordHuntConfig returns the default Word Hunt configuration.
func DefaultWordHuntConfig() WordHuntConfig {
	return WordHuntConfig{
		Scheduler: SchedulerConfig{
			SettleMS:         200,
			BurstWindowMS:    2000,
			TwoSlotFromLevel: 4,
			MinRetryMS:       100,
		},
		Scoring: ScoringConfig{
			TimeBonusFactor:   2,
			PerfectBonus:      500,
			LengthBonusFactor: 5,
			SpeedBonusMax:     300,
		},
		Board: BoardConfig{
			HUDTop:    2,
			HUDBottom: 1,
			Palette:   "large",
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
			Preset:     DifficultyEasy,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWordHuntYAML
}
