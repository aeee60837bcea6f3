package core

// RuntimeConfig is what the host tells a game on Reset: the terminal size,
// how often Step will be called and the seed of the run.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Steps per second of session time
	Seed     int64 // Seeds word pools, placement and filler letters; 0 lets the host pick one
}

// DefaultConfig is an 80x24 terminal stepped every 100ms.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}

// GameState is the part of a run the host acts on: the score to save and
// whether the clock is stopped.
type GameState struct {
	Score    int  // Run score so far
	GameOver bool // Run ended (time ran out or campaign won)
	Paused   bool // Paused by the player or by a too small window
}

// StepResult is what Step reports after advancing one tick.
type StepResult struct {
	State GameState
}
