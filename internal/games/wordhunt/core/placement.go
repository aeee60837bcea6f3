package core

import (
	"math"
	"math/rand"
)

// Placement search limits.
const (
	PlacementAttempts   = 50
	CenterAvoidAttempts = 30
)

// PlacementRequest describes one word to place on the playable band.
type PlacementRequest struct {
	Length          int
	Cols            int
	PlayableRows    int
	RowOffset       int // First playable row (the top exclusion band height)
	Occupied        CellSet
	CenterAvoidance float64
}

// Placement is the origin chosen for a word.
// Fallback is set when no free origin was found and overlap was ignored.
type Placement struct {
	Cell
	Fallback bool
}

// FindPosition picks a non-overlapping origin for a word, preferring
// positions away from the centre of the playable band.
// It returns false only when the word can never fit.
func FindPosition(rng *rand.Rand, req PlacementRequest) (Placement, bool) {
	if req.Length <= 0 || req.Length > req.Cols || req.PlayableRows <= 0 {
		return Placement{}, false
	}

	maxCol := req.Cols - req.Length
	centerX := float64(req.Cols) / 2
	centerY := float64(req.RowOffset) + float64(req.PlayableRows)/2
	radius := float64(min(req.Cols, req.PlayableRows)) * req.CenterAvoidance / 2

	for attempt := 0; attempt < PlacementAttempts; attempt++ {
		c := Cell{
			Col: rng.Intn(maxCol + 1),
			Row: req.RowOffset + rng.Intn(req.PlayableRows),
		}

		if attempt < CenterAvoidAttempts && radius > 0 {
			midX := float64(c.Col) + float64(req.Length)/2
			midY := float64(c.Row) + 0.5
			if math.Hypot(midX-centerX, midY-centerY) < radius {
				continue
			}
		}

		if req.Occupied.Free(c, req.Length) {
			return Placement{Cell: c}, true
		}
	}

	// Give up on overlap; the caller decides whether to use it
	return Placement{
		Cell: Cell{
			Col: rng.Intn(maxCol + 1),
			Row: req.RowOffset + rng.Intn(req.PlayableRows),
		},
		Fallback: true,
	}, true
}
