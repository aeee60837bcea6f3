package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TrackedWord is a target or decoy word managed by the Scheduler.
// Its lifecycle state is derived from the timestamp fields, see State.
type TrackedWord struct {
	Text   string
	Decoy  bool
	Origin Cell // First letter; reassigned on every surfacing
	Points int  // Zero for decoys

	SurfacedAt      time.Time
	SurfaceDuration time.Duration
	ClickableFrom   time.Time
	ClickableUntil  time.Time
	FoundAt         time.Time
}

// NewTrackedWord creates a hidden word. Text is upper-cased.
func NewTrackedWord(text string, decoy bool, d Difficulty) TrackedWord {
	text = strings.ToUpper(strings.TrimSpace(text))
	w := TrackedWord{Text: text, Decoy: decoy}
	if !decoy {
		w.Points = PointValue(text, d)
	}
	return w
}

// PointValue returns the base points of a real word at a difficulty tier.
func PointValue(text string, d Difficulty) int {
	return utf8.RuneCountInString(text) * d.LetterPoints()
}

// NewWordSet builds the initial hidden word list for a level.
func NewWordSet(p LevelParameters, targets, decoys []string) []TrackedWord {
	words := make([]TrackedWord, 0, len(targets)+len(decoys))
	for _, t := range targets {
		words = append(words, NewTrackedWord(t, false, p.Difficulty))
	}
	for _, d := range decoys {
		words = append(words, NewTrackedWord(d, true, p.Difficulty))
	}
	return words
}

// Len returns the word length in letter cells.
func (w TrackedWord) Len() int {
	return utf8.RuneCountInString(w.Text)
}

// State reconstructs the lifecycle state at the given instant.
func (w TrackedWord) State(now time.Time) Lifecycle {
	switch {
	case !w.FoundAt.IsZero():
		return Found
	case w.SurfacedAt.IsZero():
		return Hidden
	case now.Sub(w.SurfacedAt) >= w.SurfaceDuration:
		return Hidden
	case w.ClickableFrom.IsZero() || now.Before(w.ClickableFrom):
		return Pending
	case now.After(w.ClickableUntil):
		return Hidden
	default:
		return Clickable
	}
}

// Visible reports whether the word is on the grid (pending or clickable).
func (w TrackedWord) Visible(now time.Time) bool {
	s := w.State(now)
	return s == Pending || s == Clickable
}

// Covers reports whether the word's span includes the cell.
func (w TrackedWord) Covers(c Cell) bool {
	return c.Row == w.Origin.Row && c.Col >= w.Origin.Col && c.Col < w.Origin.Col+w.Len()
}

// ClickableLeft returns how much of the clickable window remains, or 0.
func (w TrackedWord) ClickableLeft(now time.Time) time.Duration {
	if w.State(now) != Clickable {
		return 0
	}
	return w.ClickableUntil.Sub(now)
}

// hide returns the word to Hidden, clearing its surfacing timestamps.
func (w *TrackedWord) hide() {
	w.SurfacedAt = time.Time{}
	w.SurfaceDuration = 0
	w.ClickableFrom = time.Time{}
	w.ClickableUntil = time.Time{}
}
