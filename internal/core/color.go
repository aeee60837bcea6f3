package core

// Color is the foreground color of a screen cell. The terminal renderer maps
// each value to an ANSI 256-color code.
type Color uint8

// Colors used by the board, the HUD and click feedback.
const (
	ColorDefault Color = iota

	// Board
	ColorGray         // Filler letters
	ColorWhite        // Surfacing word, not yet clickable
	ColorBrightYellow // Clickable word
	ColorYellow       // Clickable word about to close; "too early" feedback
	ColorBrightCyan   // Cursor cell
	ColorCyan         // Cursor brackets

	// HUD and overlays
	ColorBrightWhite
	ColorDim // Help line

	// Feedback
	ColorBrightGreen // Find
	ColorRed         // Miss
	ColorOrange      // Decoy
	ColorBrightRed   // Level failed
)
