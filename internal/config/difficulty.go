package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset parses a preset name, ignoring case.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// StartLevelForPreset returns the first level of a run at a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 8
	default:
		return 1
	}
}

// PaletteForPreset returns the letter palette of a preset.
func PaletteForPreset(preset DifficultyPreset) core.Palette {
	switch preset {
	case DifficultyNormal:
		return core.PaletteMedium
	case DifficultyHard:
		return core.PaletteSmall
	default:
		return core.PaletteLarge
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WordHuntConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	cfg.Board.Palette = PaletteForPreset(preset).Name
}
