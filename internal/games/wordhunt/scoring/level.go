package scoring

import (
	"math"
	"time"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

// MaxLevelMultiplier caps the level scaling.
const MaxLevelMultiplier = 3.0

// Grade is the letter grade of a finished level.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

var gradeOrder = []Grade{GradeF, GradeD, GradeC, GradeB, GradeA, GradeS}

// shift moves a grade up (positive) or down (negative), saturating at S and F.
func (g Grade) shift(n int) Grade {
	for i, o := range gradeOrder {
		if o == g {
			return gradeOrder[max(0, min(len(gradeOrder)-1, i+n))]
		}
	}
	return g
}

// LevelInput describes a finished level. LevelTime and TimeRemaining must
// exclude time spent paused.
type LevelInput struct {
	Level         int
	Words         []core.TrackedWord
	LevelTime     time.Duration
	TimeLimit     time.Duration // 0 when untimed
	TimeRemaining time.Duration
	MaxCombo      int
	TotalAttempts int
	CorrectFinds  int
	Palette       core.Palette
}

// Breakdown is the itemised end-of-level score.
type Breakdown struct {
	Level          int
	WordsFound     int
	WordsTotal     int
	Accuracy       float64
	EffectiveCombo int
	LevelTime      time.Duration

	BaseScore     int
	TimeBonus     int
	AccuracyBonus int
	PerfectBonus  int
	LengthBonus   int
	SpeedBonus    int
	Subtotal      int

	ComboMultiplier   float64
	LevelMultiplier   float64
	PaletteMultiplier float64

	Total int
	Grade Grade
}

// Perfect reports whether the level was cleared without a miss.
func (b Breakdown) Perfect() bool {
	return b.PerfectBonus > 0
}

// ExpectedTime is the par time of a level: 30s plus 10s per level.
func ExpectedTime(level int) time.Duration {
	return 30*time.Second + time.Duration(max(level, 1))*10*time.Second
}

// LevelMultiplier grows by 10% per level, capped at 3x.
func LevelMultiplier(level int) float64 {
	return min(MaxLevelMultiplier, 1+0.1*float64(max(level, 1)-1))
}

// FinalizeLevel computes the level breakdown with the default rules.
func FinalizeLevel(in LevelInput) Breakdown {
	return DefaultRules().FinalizeLevel(in)
}

// FinalizeLevel computes the level breakdown. Negative inputs are clamped to zero.
func (r Rules) FinalizeLevel(in LevelInput) Breakdown {
	r = r.normalized()

	level := max(in.Level, 1)
	levelTime := max(in.LevelTime, 0)
	remaining := max(in.TimeRemaining, 0)

	b := Breakdown{
		Level:             level,
		LevelTime:         levelTime,
		Accuracy:          Accuracy(in.CorrectFinds, in.TotalAttempts),
		LevelMultiplier:   LevelMultiplier(level),
		PaletteMultiplier: paletteMultiplier(in.Palette.Multiplier),
	}

	letters := 0
	for _, w := range in.Words {
		if w.Decoy {
			continue
		}
		b.WordsTotal++
		if w.FoundAt.IsZero() {
			continue
		}
		b.WordsFound++
		b.BaseScore += max(w.Points, 0)
		letters += w.Len()
	}

	b.EffectiveCombo = max(EffectiveCombo(b.WordsFound), max(in.MaxCombo, 0))
	b.ComboMultiplier = ComboMultiplier(b.EffectiveCombo, b.Accuracy, 0)

	if b.WordsFound > 0 {
		if in.TimeLimit > 0 {
			b.TimeBonus = int(math.Floor(remaining.Seconds() * r.TimeBonusFactor))
		}
		b.AccuracyBonus = int(math.Floor(b.Accuracy))
		if b.Accuracy == 100 {
			b.PerfectBonus = r.PerfectBonus
		}
		avgLen := float64(letters) / float64(b.WordsFound)
		b.LengthBonus = int(math.Floor(avgLen * float64(b.WordsFound) * float64(r.LengthBonusFactor)))
		b.SpeedBonus = r.speedBonus(level, levelTime, in.TimeLimit, remaining)
	}

	b.Subtotal = b.BaseScore + b.TimeBonus + b.AccuracyBonus + b.PerfectBonus + b.LengthBonus + b.SpeedBonus
	total := float64(b.Subtotal) * b.ComboMultiplier * b.LevelMultiplier * b.PaletteMultiplier
	b.Total = max(0, int(math.Floor(total)))
	b.Grade = gradeFor(b.Accuracy, b.WordsFound, levelTime, ExpectedTime(level))
	return b
}

// speedBonus rewards remaining time on timed levels and beating par otherwise.
func (r Rules) speedBonus(level int, levelTime, limit, remaining time.Duration) int {
	if limit > 0 {
		ratio := min(1, remaining.Seconds()/limit.Seconds())
		return int(math.Floor(ratio * float64(r.SpeedBonusMax)))
	}

	expected := ExpectedTime(level)
	if levelTime >= expected {
		return 0
	}
	ratio := (expected - levelTime).Seconds() / expected.Seconds()
	return int(math.Floor(ratio * float64(r.SpeedBonusMax)))
}

// gradeFor grades accuracy, then nudges one step for fast or slow clears.
func gradeFor(accuracy float64, found int, levelTime, expected time.Duration) Grade {
	if found == 0 {
		return GradeF
	}

	var g Grade
	switch {
	case accuracy >= 90:
		g = GradeA
	case accuracy >= 80:
		g = GradeB
	case accuracy >= 70:
		g = GradeC
	case accuracy >= 60:
		g = GradeD
	default:
		g = GradeF
	}

	switch {
	case levelTime > 0 && levelTime <= expected*3/4:
		g = g.shift(1)
	case levelTime > expected*3/2:
		g = g.shift(-1)
	}
	return g
}

// ProfileTotals are the lifetime statistics of a player profile.
type ProfileTotals struct {
	Games      int
	Levels     int
	WordsFound int
	BestScore  int
}
