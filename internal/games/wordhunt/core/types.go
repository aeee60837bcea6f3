// Package core provides the word-appearance scheduler for Word Hunt:
// level parameters, tracked words, placement and the surfacing state machine.
// This package is UI-agnostic and deterministic for a given seed and clock.
package core

import "fmt"

// Cell is a grid position measured in letter cells.
// Col increases to the right, Row increases downward.
type Cell struct {
	Col int
	Row int
}

// C is shorthand for Cell{Col: col, Row: row}.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// CellSet is a set of occupied cells used for one placement batch.
type CellSet map[Cell]struct{}

// Add marks a single cell as occupied.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// AddSpan marks length cells starting at origin, left to right.
func (s CellSet) AddSpan(origin Cell, length int) {
	for i := 0; i < length; i++ {
		s.Add(Cell{Col: origin.Col + i, Row: origin.Row})
	}
}

// Has reports whether the cell is occupied.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Free reports whether every cell of the span is unoccupied.
func (s CellSet) Free(origin Cell, length int) bool {
	for i := 0; i < length; i++ {
		if s.Has(Cell{Col: origin.Col + i, Row: origin.Row}) {
			return false
		}
	}
	return true
}

// Lifecycle is the visibility state of a tracked word.
type Lifecycle uint8

const (
	Hidden    Lifecycle = iota // Not on the grid
	Pending                    // Visible but not yet clickable
	Clickable                  // Visible and inside its clickable window
	Found                      // Terminal: the player found it
)

// String returns the string representation of a lifecycle state.
func (l Lifecycle) String() string {
	switch l {
	case Hidden:
		return "Hidden"
	case Pending:
		return "Pending"
	case Clickable:
		return "Clickable"
	case Found:
		return "Found"
	default:
		return "Unknown"
	}
}

// Difficulty is the level-derived difficulty tier.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	Extreme
)

// String returns the string representation of a difficulty tier.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// LetterPoints returns the points awarded per letter at this tier.
func (d Difficulty) LetterPoints() int {
	switch d {
	case Medium:
		return 12
	case Hard:
		return 15
	case Extreme:
		return 20
	default:
		return 10
	}
}

// Palette is the visual and scoring tier picked by the player.
// Smaller text is harder to read and pays a larger multiplier.
type Palette struct {
	Name       string
	Multiplier float64
	CellWidth  int // Terminal columns per letter
	CellHeight int // Terminal rows per letter row
}

// Built-in palettes.
var (
	PaletteLarge  = Palette{Name: "large", Multiplier: 1.0, CellWidth: 3, CellHeight: 2}
	PaletteMedium = Palette{Name: "medium", Multiplier: 1.5, CellWidth: 2, CellHeight: 1}
	PaletteSmall  = Palette{Name: "small", Multiplier: 2.0, CellWidth: 1, CellHeight: 1}
)

// Palettes lists the built-in palettes from easiest to hardest.
func Palettes() []Palette {
	return []Palette{PaletteLarge, PaletteMedium, PaletteSmall}
}

// PaletteByName looks up a built-in palette. Unknown names return the large palette and false.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes() {
		if p.Name == name {
			return p, true
		}
	}
	return PaletteLarge, false
}
