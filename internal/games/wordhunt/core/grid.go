package core

// Grid is the letter grid in cells, with rows reserved for the UI at the top and bottom.
type Grid struct {
	Cols   int
	Rows   int
	Top    int // Exclusion rows at the top
	Bottom int // Exclusion rows at the bottom
}

// PlayableRows returns the number of rows words may occupy.
func (g Grid) PlayableRows() int {
	return g.Rows - g.Top - g.Bottom
}

// Fits reports whether a span of length cells at origin lies inside the playable band.
func (g Grid) Fits(origin Cell, length int) bool {
	return origin.Col >= 0 &&
		origin.Col+length <= g.Cols &&
		origin.Row >= g.Top &&
		origin.Row < g.Rows-g.Bottom
}

// Viewport is the drawing surface a grid is derived from.
// Units are whatever the host renders in (pixels, terminal cells).
type Viewport struct {
	Width          int
	Height         int
	CellWidth      int
	CellHeight     int
	TopReserved    int // Height taken by UI above the grid
	BottomReserved int // Height taken by UI below the grid
}

// GridFromViewport converts surface dimensions into grid dimensions.
// When the reserved bands leave no playable rows, 10% of the rows at the top
// and 5% at the bottom are reserved instead.
func GridFromViewport(v Viewport) Grid {
	cw := max(v.CellWidth, 1)
	ch := max(v.CellHeight, 1)

	g := Grid{
		Cols:   max(v.Width, 0) / cw,
		Rows:   max(v.Height, 0) / ch,
		Top:    ceilDiv(max(v.TopReserved, 0), ch),
		Bottom: ceilDiv(max(v.BottomReserved, 0), ch),
	}

	if g.PlayableRows() <= 0 {
		g.Top = g.Rows / 10
		g.Bottom = g.Rows / 20
	}
	return g
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
