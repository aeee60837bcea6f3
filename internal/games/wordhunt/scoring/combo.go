package scoring

import "time"

// ComboThreshold is the number of finds before the combo starts counting.
const ComboThreshold = 3

// ComboState tracks the running combo of one level.
// The combo counts total finds, so a miss never resets it.
type ComboState struct {
	finds      int
	max        int
	lastFindAt time.Time
}

// RecordFind counts a correct find at now.
func (c *ComboState) RecordFind(now time.Time) {
	c.finds++
	c.lastFindAt = now
	c.max = max(c.max, c.Count())
}

// Count returns the current combo: finds beyond the third.
func (c *ComboState) Count() int {
	return EffectiveCombo(c.finds)
}

// Finds returns the number of correct finds recorded.
func (c *ComboState) Finds() int {
	return c.finds
}

// Max returns the highest combo reached.
func (c *ComboState) Max() int {
	return c.max
}

// LastFindAt returns the time of the latest find, zero if none.
func (c *ComboState) LastFindAt() time.Time {
	return c.lastFindAt
}

// SinceLastFind returns the gap since the latest find, or 0 if there was none.
func (c *ComboState) SinceLastFind(now time.Time) time.Duration {
	if c.lastFindAt.IsZero() {
		return 0
	}
	return max(now.Sub(c.lastFindAt), 0)
}

// SpeedMultiplier maps the combo onto the scheduler's pacing factor:
// 5% faster per combo step, at most twice as fast.
func (c *ComboState) SpeedMultiplier() float64 {
	return min(2, 1+0.05*float64(c.Count()))
}

// Reset clears the state for a new level.
func (c *ComboState) Reset() {
	*c = ComboState{}
}

// EffectiveCombo returns the combo implied by a number of finds.
func EffectiveCombo(finds int) int {
	return max(0, finds-ComboThreshold)
}
