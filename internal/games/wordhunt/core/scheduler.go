package core

import (
	"math/rand"
	"strings"
	"time"
)

// Hard limits of the surfacing state machine.
const (
	MaxClickableWindow = 3000 * time.Millisecond
	ForceAttempts      = 50
)

// SchedulerConfig holds the tunable pacing constants.
type SchedulerConfig struct {
	SettleDelay      time.Duration // Pending phase before a word accepts clicks
	BurstWindow      time.Duration // How long after a find the burst trigger stays armed
	TwoSlotFromLevel int           // First level that allows two visible words
	MinRetryDelay    time.Duration
}

// DefaultSchedulerConfig returns the standard pacing.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		SettleDelay:      200 * time.Millisecond,
		BurstWindow:      2 * time.Second,
		TwoSlotFromLevel: 4,
		MinRetryDelay:    100 * time.Millisecond,
	}
}

// normalized fills zero fields with defaults.
func (c SchedulerConfig) normalized() SchedulerConfig {
	d := DefaultSchedulerConfig()
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.BurstWindow <= 0 {
		c.BurstWindow = d.BurstWindow
	}
	if c.TwoSlotFromLevel <= 0 {
		c.TwoSlotFromLevel = d.TwoSlotFromLevel
	}
	if c.MinRetryDelay <= 0 {
		c.MinRetryDelay = d.MinRetryDelay
	}
	return c
}

// situation classifies the grid when a surfacing attempt is deferred.
type situation uint8

const (
	situationBurst situation = iota // Shortly after a find, nothing visible
	situationIdle                   // Nothing visible
	situationBusy                   // Something already visible
)

// Scheduler owns the words of one level session and decides, tick by tick,
// which of them are visible and clickable.
//
// All transitions are driven by the timestamps passed to Advance and the other
// methods, never by tick counts, so any tick rate works. The scheduler has no
// notion of pausing: the host must exclude paused time from the clock it feeds
// in, otherwise a pause is treated as real elapsed time and words expire.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	rng    *rand.Rand
	cfg    SchedulerConfig
	params LevelParameters
	grid   Grid
	words  []*TrackedWord

	lastSurfaced map[string]time.Time // Cooldown stamps
	nextEligible map[string]time.Time // Retry gate after a failed attempt
	plannedNext  map[string]time.Time // Pacing hint recorded on success

	speed       float64
	lastFindAt  time.Time
	lastVisible time.Time
	primed      bool
}

// NewScheduler creates a scheduler for one level. The words are copied.
func NewScheduler(p LevelParameters, words []TrackedWord, grid Grid, rng *rand.Rand, cfg SchedulerConfig) *Scheduler {
	s := &Scheduler{
		rng:          rng,
		cfg:          cfg.normalized(),
		params:       p,
		grid:         grid,
		words:        make([]*TrackedWord, len(words)),
		lastSurfaced: make(map[string]time.Time),
		nextEligible: make(map[string]time.Time),
		plannedNext:  make(map[string]time.Time),
		speed:        1,
	}
	for i := range words {
		w := words[i]
		s.words[i] = &w
	}
	return s
}

// Params returns the level parameters the scheduler runs with.
func (s *Scheduler) Params() LevelParameters {
	return s.params
}

// Grid returns the current grid dimensions.
func (s *Scheduler) Grid() Grid {
	return s.grid
}

// Words returns a snapshot of every tracked word.
func (s *Scheduler) Words() []TrackedWord {
	out := make([]TrackedWord, len(s.words))
	for i, w := range s.words {
		out[i] = *w
	}
	return out
}

// MaxVisible is the number of words allowed on the grid at once.
func (s *Scheduler) MaxVisible() int {
	if s.params.Level >= s.cfg.TwoSlotFromLevel {
		return 2
	}
	return 1
}

// VisibleCount returns the number of pending or clickable words.
func (s *Scheduler) VisibleCount(now time.Time) int {
	n := 0
	for _, w := range s.words {
		if w.Visible(now) {
			n++
		}
	}
	return n
}

// Remaining returns the number of real words not yet found.
func (s *Scheduler) Remaining() int {
	n := 0
	for _, w := range s.words {
		if !w.Decoy && w.FoundAt.IsZero() {
			n++
		}
	}
	return n
}

// SetSpeedMultiplier sets the combo-derived pacing factor. Values above 1
// shorten retry delays; values below 1 are treated as 1.
func (s *Scheduler) SetSpeedMultiplier(m float64) {
	s.speed = max(m, 1)
}

// SpeedMultiplier returns the current pacing factor.
func (s *Scheduler) SpeedMultiplier() float64 {
	return s.speed
}

// LastFindAt returns the time of the most recent successful Resolve.
func (s *Scheduler) LastFindAt() time.Time {
	return s.lastFindAt
}

// NextEligible returns the retry gate for a text, if one is set.
func (s *Scheduler) NextEligible(text string) (time.Time, bool) {
	t, ok := s.nextEligible[strings.ToUpper(text)]
	return t, ok
}

// PlannedNext returns the pacing hint recorded when the text last surfaced.
// It does not gate surfacing.
func (s *Scheduler) PlannedNext(text string) (time.Time, bool) {
	t, ok := s.plannedNext[strings.ToUpper(text)]
	return t, ok
}

// Advance runs one tick: expiry, clickable windows, then surfacing decisions.
func (s *Scheduler) Advance(now time.Time) {
	if !s.primed {
		s.lastVisible = now
		s.primed = true
	}

	s.expire(now)
	s.assignWindows(now)
	s.surface(now)

	if s.VisibleCount(now) > 0 {
		s.lastVisible = now
	}
}

// expire returns words whose visible period or clickable window ended to Hidden.
func (s *Scheduler) expire(now time.Time) {
	for _, w := range s.words {
		if !w.FoundAt.IsZero() || w.SurfacedAt.IsZero() {
			continue
		}
		if now.Sub(w.SurfacedAt) >= w.SurfaceDuration {
			w.hide()
			continue
		}
		if !w.ClickableUntil.IsZero() && now.After(w.ClickableUntil) {
			w.hide()
		}
	}
}

// assignWindows opens the clickable window of settled pending words.
func (s *Scheduler) assignWindows(now time.Time) {
	for _, w := range s.words {
		s.settle(w, now)
	}
}

// settle assigns the clickable window once the settle delay has passed.
func (s *Scheduler) settle(w *TrackedWord, now time.Time) {
	if !w.FoundAt.IsZero() || w.SurfacedAt.IsZero() || !w.ClickableFrom.IsZero() {
		return
	}
	from := w.SurfacedAt.Add(s.cfg.SettleDelay)
	if now.Before(from) {
		return
	}
	w.ClickableFrom = from
	w.ClickableUntil = from.Add(min(s.params.ClickableWindow(), MaxClickableWindow))
}

// surface evaluates the triggers for every hidden word, in random order.
func (s *Scheduler) surface(now time.Time) {
	visible := s.VisibleCount(now)
	capacity := s.MaxVisible()
	cooldown := s.params.Cooldown()

	for _, i := range s.rng.Perm(len(s.words)) {
		if visible >= capacity {
			return
		}

		w := s.words[i]
		if !w.FoundAt.IsZero() || !w.SurfacedAt.IsZero() {
			continue
		}
		if last, ok := s.lastSurfaced[w.Text]; ok && now.Sub(last) < cooldown {
			continue
		}
		if next, ok := s.nextEligible[w.Text]; ok && now.Before(next) {
			continue
		}

		sit := s.classify(now, visible)
		if !s.rollTriggers(now, visible, capacity) || !s.place(w, now) {
			s.nextEligible[w.Text] = now.Add(s.retryDelay(sit))
			continue
		}
		visible++
	}
}

// classify describes the grid for retry-delay scaling.
func (s *Scheduler) classify(now time.Time, visible int) situation {
	switch {
	case visible == 0 && s.recentFind(now):
		return situationBurst
	case visible == 0:
		return situationIdle
	default:
		return situationBusy
	}
}

// recentFind reports whether a find happened within the burst window.
func (s *Scheduler) recentFind(now time.Time) bool {
	return !s.lastFindAt.IsZero() && now.Sub(s.lastFindAt) <= s.cfg.BurstWindow
}

// rollTriggers evaluates the weighted surfacing triggers in order.
func (s *Scheduler) rollTriggers(now time.Time, visible, capacity int) bool {
	level := s.params.Level

	if visible == 0 && s.recentFind(now) && s.rng.Float64() < BurstChance(level) {
		return true
	}
	if visible == 0 && s.rng.Float64() < IdleChance(level, now.Sub(s.lastVisible)) {
		return true
	}
	if visible == 1 && capacity >= 2 && s.rng.Float64() < SecondSlotChance(level) {
		return true
	}
	return s.rng.Float64() < AmbientChance(level)
}

// place finds an origin clear of the visible words and surfaces the word there.
func (s *Scheduler) place(w *TrackedWord, now time.Time) bool {
	occupied := s.occupied(now)
	p, ok := FindPosition(s.rng, PlacementRequest{
		Length:          w.Len(),
		Cols:            s.grid.Cols,
		PlayableRows:    s.grid.PlayableRows(),
		RowOffset:       s.grid.Top,
		Occupied:        occupied,
		CenterAvoidance: s.params.CenterAvoidance,
	})
	if !ok {
		return false
	}
	if p.Fallback && !occupied.Free(p.Cell, w.Len()) {
		return false
	}

	s.surfaceAt(w, p.Cell, now)
	s.plannedNext[w.Text] = now.Add(s.params.Cooldown() + time.Duration(s.rng.Int63n(int64(2*time.Second))))
	delete(s.nextEligible, w.Text)
	return true
}

// occupied collects the cells of currently visible words.
func (s *Scheduler) occupied(now time.Time) CellSet {
	cells := make(CellSet)
	for _, w := range s.words {
		if w.Visible(now) {
			cells.AddSpan(w.Origin, w.Len())
		}
	}
	return cells
}

// surfaceAt makes the word visible at origin starting now.
func (s *Scheduler) surfaceAt(w *TrackedWord, origin Cell, now time.Time) {
	w.hide()
	w.Origin = origin
	w.SurfacedAt = now
	w.SurfaceDuration = s.drawSurfaceDuration()
	s.lastSurfaced[w.Text] = now
	s.lastVisible = now
}

// drawSurfaceDuration returns the base duration with ±20% jitter,
// never shorter than the settle delay plus half a second.
func (s *Scheduler) drawSurfaceDuration() time.Duration {
	base := s.params.BaseSurfaceDuration()
	d := time.Duration(float64(base) * (0.8 + 0.4*s.rng.Float64())).Round(time.Millisecond)
	return max(d, s.cfg.SettleDelay+500*time.Millisecond)
}

// retryDelay computes how long a deferred word waits before the next attempt.
func (s *Scheduler) retryDelay(sit situation) time.Duration {
	var base time.Duration
	switch sit {
	case situationBurst:
		base = 300 * time.Millisecond
	case situationIdle:
		base = 600 * time.Millisecond
	default:
		base = 1500 * time.Millisecond
	}

	levelFactor := max(0.6, 1-0.03*float64(s.params.Level-1))
	jitter := 0.5 + s.rng.Float64()
	d := time.Duration(float64(base) * levelFactor / s.speed * jitter)
	return max(d, s.cfg.MinRetryDelay)
}

// ForceSurfaceOne surfaces a hidden word immediately, ignoring cooldowns and
// triggers. Real words are preferred over decoys. If no free origin turns up
// the word is placed near the top-left of the playable band even if it
// overlaps. Returns false when no hidden word fits the grid.
func (s *Scheduler) ForceSurfaceOne(now time.Time) bool {
	playable := s.grid.PlayableRows()
	if playable <= 0 {
		return false
	}

	var real, decoys []*TrackedWord
	for _, w := range s.words {
		if !w.FoundAt.IsZero() || w.Visible(now) || w.Len() > s.grid.Cols || w.Len() == 0 {
			continue
		}
		if w.Decoy {
			decoys = append(decoys, w)
		} else {
			real = append(real, w)
		}
	}
	candidates := real
	if len(candidates) == 0 {
		candidates = decoys
	}
	if len(candidates) == 0 {
		return false
	}

	w := candidates[s.rng.Intn(len(candidates))]
	occupied := s.occupied(now)
	maxCol := s.grid.Cols - w.Len()

	for attempt := 0; attempt < ForceAttempts; attempt++ {
		c := Cell{Col: s.rng.Intn(maxCol + 1), Row: s.grid.Top + s.rng.Intn(playable)}
		if occupied.Free(c, w.Len()) {
			s.surfaceAt(w, c, now)
			delete(s.nextEligible, w.Text)
			return true
		}
	}

	safe := Cell{Col: min(2, maxCol), Row: s.grid.Top + min(1, playable-1)}
	s.surfaceAt(w, safe, now)
	delete(s.nextEligible, w.Text)
	return true
}

// ResyncDimensions recomputes the grid from a new viewport. Visible words that
// no longer fit are returned to Hidden.
func (s *Scheduler) ResyncDimensions(v Viewport) {
	s.grid = GridFromViewport(v)
	for _, w := range s.words {
		if !w.FoundAt.IsZero() || w.SurfacedAt.IsZero() {
			continue
		}
		if !s.grid.Fits(w.Origin, w.Len()) {
			w.hide()
		}
	}
}

// WordAt returns the visible word covering the cell, decoys included.
func (s *Scheduler) WordAt(c Cell, now time.Time) (TrackedWord, bool) {
	for _, w := range s.words {
		if w.Visible(now) && w.Covers(c) {
			return *w, true
		}
	}
	return TrackedWord{}, false
}

// Resolve marks a real word as found if it is clickable at now.
// It returns false for unknown, decoy, already found, pending or expired words.
func (s *Scheduler) Resolve(text string, now time.Time) bool {
	text = strings.ToUpper(strings.TrimSpace(text))
	for _, w := range s.words {
		if w.Decoy || w.Text != text || !w.FoundAt.IsZero() {
			continue
		}
		s.settle(w, now)
		if w.State(now) != Clickable {
			continue
		}

		w.FoundAt = now
		delete(s.lastSurfaced, text)
		delete(s.nextEligible, text)
		delete(s.plannedNext, text)
		s.lastFindAt = now
		return true
	}
	return false
}

// BurstChance is the surfacing chance shortly after a find: 50% rising to 70%.
func BurstChance(level int) float64 {
	return clampF(0.5+0.02*float64(level-1), 0.5, 0.7)
}

// IdleChance is the surfacing chance with nothing visible. The base (85% at
// level 1 down to 65%) grows by 10% per second of empty grid, capped at 95%.
func IdleChance(level int, gap time.Duration) float64 {
	base := clampF(0.85-0.01*float64(level-1), 0.65, 0.85)
	return min(0.95, base*(1+max(gap.Seconds(), 0)*0.1))
}

// SecondSlotChance is the chance of adding a second visible word: 10% to 40%.
func SecondSlotChance(level int) float64 {
	return clampF(0.10+0.03*float64(level-1), 0.10, 0.40)
}

// AmbientChance is the flat per-tick trigger.
func AmbientChance(level int) float64 {
	if level >= 5 {
		return 0.12
	}
	return 0.10
}

func clampF(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
