// Package scoring turns found words into points. All functions are pure
// and safe for concurrent use.
package scoring

import "time"

// Rules holds the tunable scoring constants.
type Rules struct {
	TimeBonusFactor   float64 // Points per second left on the clock
	PerfectBonus      int     // Awarded for a level cleared at 100% accuracy
	LengthBonusFactor int     // Points per letter of every found word
	SpeedBonusMax     int     // Speed bonus for an instant clear
}

// DefaultRules returns the standard scoring constants.
func DefaultRules() Rules {
	return Rules{
		TimeBonusFactor:   2,
		PerfectBonus:      500,
		LengthBonusFactor: 5,
		SpeedBonusMax:     300,
	}
}

// normalized replaces invalid fields with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.TimeBonusFactor < 0 {
		r.TimeBonusFactor = d.TimeBonusFactor
	}
	if r.PerfectBonus < 0 {
		r.PerfectBonus = d.PerfectBonus
	}
	if r.LengthBonusFactor < 0 {
		r.LengthBonusFactor = d.LengthBonusFactor
	}
	if r.SpeedBonusMax < 0 {
		r.SpeedBonusMax = d.SpeedBonusMax
	}
	return r
}

// Accuracy returns correct finds as a percentage of attempts.
// With no attempts yet the player is at 100%.
func Accuracy(correct, attempts int) float64 {
	if attempts <= 0 {
		return 100
	}
	correct = max(0, min(correct, attempts))
	return float64(correct) / float64(attempts) * 100
}

// AccuracyFactor scales combo rewards by accuracy: 1.0 below 80%,
// rising linearly to 1.2 at 100%.
func AccuracyFactor(accuracy float64) float64 {
	if accuracy < 80 {
		return 1
	}
	return 1 + min(accuracy-80, 20)/20*0.20
}

// SpeedFactor scales combo rewards by the gap since the previous find:
// 1.15 under two seconds, decaying linearly to 1.0 at six seconds.
// A zero gap means unknown and yields 1.0.
func SpeedFactor(gap time.Duration) float64 {
	switch {
	case gap <= 0:
		return 1
	case gap < 2*time.Second:
		return 1.15
	case gap >= 6*time.Second:
		return 1
	default:
		return 1 + 0.15*(6-gap.Seconds())/4
	}
}

// Combo multiplier limits.
const (
	MaxBaseMultiplier = 2.5
	MaxMultiplier     = 3.0
)

// BaseComboMultiplier is the tiered combo curve before skill scaling.
func BaseComboMultiplier(count int) float64 {
	switch {
	case count <= 0:
		return 1
	case count <= 3:
		return 1 + 0.10*float64(count)
	case count <= 7:
		return 1.3 + 0.15*float64(count-3)
	case count <= 12:
		return 1.9 + 0.10*float64(count-7)
	default:
		return min(MaxBaseMultiplier, 2.4+0.02*float64(count-12))
	}
}

// ComboMultiplier is the tiered curve scaled by accuracy and speed, capped at 3.0.
// Without an active combo it is exactly 1.
func ComboMultiplier(count int, accuracy float64, gap time.Duration) float64 {
	if count <= 0 {
		return 1
	}
	m := BaseComboMultiplier(count) * AccuracyFactor(accuracy) * SpeedFactor(gap)
	return min(MaxMultiplier, m)
}

// paletteMultiplier treats an unset palette multiplier as 1.
func paletteMultiplier(m float64) float64 {
	if m <= 0 {
		return 1
	}
	return m
}
