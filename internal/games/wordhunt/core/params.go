package core

import "time"

// LevelParameters is the immutable difficulty profile of one level.
type LevelParameters struct {
	Level             int
	Difficulty        Difficulty
	TargetWords       int
	MinLength         int
	MaxLength         int
	AnimationInterval time.Duration // How often background letters shuffle
	TimeLimit         time.Duration // 0 means no limit
	CenterAvoidance   float64       // 0..1, strength of the empty zone around the grid centre
}

// ParamsForLevel derives the parameters of a level. Levels below 1 are treated as 1.
func ParamsForLevel(level int) LevelParameters {
	if level < 1 {
		level = 1
	}
	step := level - 1

	p := LevelParameters{
		Level:             level,
		Difficulty:        difficultyForLevel(level),
		TargetWords:       min(4+step/2, 12),
		AnimationInterval: max(40*time.Millisecond, 120*time.Millisecond-time.Duration(step)*5*time.Millisecond),
		CenterAvoidance:   min(0.8, 0.3+0.05*float64(step)),
	}

	switch p.Difficulty {
	case Easy:
		p.MinLength, p.MaxLength = 3, 5
	case Medium:
		p.MinLength, p.MaxLength = 4, 6
	case Hard:
		p.MinLength, p.MaxLength = 5, 7
	default:
		p.MinLength, p.MaxLength = 5, 9
	}

	// The first two levels are untimed
	if level >= 3 {
		p.TimeLimit = max(45*time.Second, 120*time.Second-time.Duration(level-3)*5*time.Second)
	}

	return p
}

// difficultyForLevel maps a level number onto its tier.
func difficultyForLevel(level int) Difficulty {
	switch {
	case level <= 3:
		return Easy
	case level <= 7:
		return Medium
	case level <= 12:
		return Hard
	default:
		return Extreme
	}
}

// HasTimeLimit reports whether the level is timed.
func (p LevelParameters) HasTimeLimit() bool {
	return p.TimeLimit > 0
}

// Cooldown is the minimum gap between two surfacings of the same text.
// 15s at level 1, shrinking by half a second per level down to 6s.
func (p LevelParameters) Cooldown() time.Duration {
	return max(6*time.Second, 15*time.Second-time.Duration(p.Level-1)*500*time.Millisecond)
}

// ClickableWindow is how long a surfaced word accepts clicks, before the
// scheduler's hard cap is applied.
func (p LevelParameters) ClickableWindow() time.Duration {
	return max(1500*time.Millisecond, 3500*time.Millisecond-time.Duration(p.Level-1)*100*time.Millisecond)
}

// BaseSurfaceDuration is the centre of the visible-duration draw.
func (p LevelParameters) BaseSurfaceDuration() time.Duration {
	return max(2000*time.Millisecond, 5000*time.Millisecond-time.Duration(p.Level-1)*150*time.Millisecond)
}
