package scoring

import (
	"math"
	"time"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

// FindInput is everything known when a word is found.
// CorrectFinds and TotalAttempts include the find being scored.
type FindInput struct {
	Word          core.TrackedWord
	TimeRemaining time.Duration
	HasTimeLimit  bool
	ComboCount    int
	TotalAttempts int
	CorrectFinds  int
	Palette       core.Palette
	SinceLastFind time.Duration // 0 when unknown
}

// Delta is the itemised score of one find.
type Delta struct {
	Base          int
	TimeBonus     int
	AccuracyBonus int
	ComboBonus    int
	Accuracy      float64
	Multiplier    float64 // Combo multiplier
	Palette       float64 // Palette multiplier
	Points        int
}

// ScoreSingleFind scores one find with the default rules.
func ScoreSingleFind(in FindInput) Delta {
	return DefaultRules().ScoreSingleFind(in)
}

// ScoreSingleFind scores one find. Decoys score nothing.
func (r Rules) ScoreSingleFind(in FindInput) Delta {
	r = r.normalized()

	count := max(in.ComboCount, 0)
	acc := Accuracy(in.CorrectFinds, in.TotalAttempts)
	d := Delta{
		Accuracy:   acc,
		Multiplier: 1,
		Palette:    paletteMultiplier(in.Palette.Multiplier),
	}
	if in.Word.Decoy {
		return d
	}

	d.Base = max(in.Word.Points, 0)
	if in.HasTimeLimit && in.TimeRemaining > 0 {
		d.TimeBonus = int(math.Floor(in.TimeRemaining.Seconds() * r.TimeBonusFactor))
	}

	// Skill bonuses only apply once a combo is running
	if count > 0 {
		accF := AccuracyFactor(acc)
		speedF := SpeedFactor(in.SinceLastFind)
		d.AccuracyBonus = int(math.Floor(acc))
		d.ComboBonus = int(math.Floor(float64(count) * 5 * accF * speedF))
		d.Multiplier = ComboMultiplier(count, acc, in.SinceLastFind)
	}

	sum := float64(d.Base + d.TimeBonus + d.AccuracyBonus + d.ComboBonus)
	d.Points = int(math.Floor(sum * d.Multiplier * d.Palette))
	return d
}
