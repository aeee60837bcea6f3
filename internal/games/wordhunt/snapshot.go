package wordhunt

import (
	"time"

	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateLevelClear  GameStateType = "level_clear"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// WordSnapshot is the observable state of one tracked word.
type WordSnapshot struct {
	Text   string
	Decoy  bool
	State  whcore.Lifecycle
	Origin whcore.Cell
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int
	Score     int
	Elapsed   time.Duration // Unpaused session time
	Remaining int           // Real words still hidden or visible
	Visible   int
	Combo     int
	Attempts  int
	Correct   int
	Cursor    whcore.Cell
	Grid      whcore.Grid
	Words     []WordSnapshot
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.phase == phaseWon:
		state = StateWin
	case g.phase == phaseGameOver:
		state = StateGameOver
	case g.phase == phaseLevelClear:
		state = StateLevelClear
	case g.paused:
		state = StatePaused
	}

	now := g.now()
	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.level,
		Score:     g.score,
		Elapsed:   g.elapsed,
		Remaining: g.sched.Remaining(),
		Visible:   g.sched.VisibleCount(now),
		Combo:     g.combo.Count(),
		Attempts:  g.attempts,
		Correct:   g.correct,
		Cursor:    g.cursor,
		Grid:      g.sched.Grid(),
		State:     state,
	}
	for _, w := range g.sched.Words() {
		s.Words = append(s.Words, WordSnapshot{
			Text:   w.Text,
			Decoy:  w.Decoy,
			State:  w.State(now),
			Origin: w.Origin,
		})
	}
	return s
}
