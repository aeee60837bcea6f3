package wordhunt

import (
	"math/rand"

	"github.com/vovakirdan/wordhunt/internal/core"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
)

// loadLevel builds the word set and scheduler of a level and starts its clock.
func (g *Game) loadLevel(level int) {
	g.level = level
	g.params = whcore.ParamsForLevel(level)
	if g.mode == ModeEndless {
		g.params.TimeLimit = 0
	}

	pool := g.list.SelectPool(g.params, g.rng)
	set := whcore.NewWordSet(g.params, pool.Targets, pool.Decoys)
	grid := whcore.GridFromViewport(g.viewport())
	schedRng := rand.New(rand.NewSource(g.rng.Int63()))
	g.sched = whcore.NewScheduler(g.params, set, grid, schedRng, g.cfg.Scheduler.Core())

	g.levelStart = g.elapsed
	g.lastVisibleAt = g.elapsed
	g.lastAnimAt = g.elapsed
	g.combo.Reset()
	g.attempts = 0
	g.correct = 0
	g.clearTicks = 0
	g.phase = phasePlaying

	grid = g.sched.Grid()
	g.cursor = whcore.C(grid.Cols/2, grid.Top+grid.PlayableRows()/2)
	g.buildBackground()
	g.checkSize()
}

// finishLevel scores the level. A cleared level moves to the summary;
// running out of time ends the run.
func (g *Game) finishLevel(cleared bool) {
	b := g.rules.FinalizeLevel(scoring.LevelInput{
		Level:         g.level,
		Words:         g.sched.Words(),
		LevelTime:     g.levelElapsed(),
		TimeLimit:     g.params.TimeLimit,
		TimeRemaining: g.timeRemaining(),
		MaxCombo:      g.combo.Max(),
		TotalAttempts: g.attempts,
		CorrectFinds:  g.correct,
		Palette:       g.palette,
	})
	g.score += b.Total
	g.history = append(g.history, b)
	g.pending = append(g.pending, b)

	switch {
	case !cleared:
		g.phase = phaseGameOver
		g.setFeedback("Time's up!", core.ColorBrightRed)
	case g.mode == ModeCampaign && g.level >= CampaignLevels:
		g.phase = phaseWon
	default:
		g.phase = phaseLevelClear
		g.clearTicks = 0
	}
}

// lastBreakdown returns the most recent level result.
func (g *Game) lastBreakdown() (scoring.Breakdown, bool) {
	if len(g.history) == 0 {
		return scoring.Breakdown{}, false
	}
	return g.history[len(g.history)-1], true
}
