package wordhunt

import (
	"fmt"
	"time"

	"github.com/vovakirdan/wordhunt/internal/core"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
)

// cellAt maps a screen position onto a grid cell.
func (g *Game) cellAt(p core.Pointer) (whcore.Cell, bool) {
	if p.X < 0 || p.Y < 0 {
		return whcore.Cell{}, false
	}
	c := whcore.C(p.X/max(g.palette.CellWidth, 1), p.Y/max(g.palette.CellHeight, 1))
	grid := g.sched.Grid()
	if !grid.Fits(c, 1) {
		return whcore.Cell{}, false
	}
	return c, true
}

// playfield is the screen area below the HUD and above the help line.
func (g *Game) playfield() core.Rect {
	top, bottom := g.cfg.Board.HUDTop, g.cfg.Board.HUDBottom
	return core.NewRect(0, top, g.screenW, g.screenH-top-bottom)
}

// clickScreen handles a mouse click. Clicks on the HUD are ignored.
func (g *Game) clickScreen(p core.Pointer, now time.Time) {
	if !g.playfield().Contains(p.X, p.Y) {
		return
	}
	c, ok := g.cellAt(p)
	if !ok {
		return
	}
	g.cursor = c
	g.clickCell(c, now)
}

// clickCell attempts to find the word covering a grid cell.
func (g *Game) clickCell(c whcore.Cell, now time.Time) {
	g.attempts++

	w, ok := g.sched.WordAt(c, now)
	switch {
	case !ok:
		g.setFeedback("Miss", core.ColorRed)
		return
	case w.Decoy:
		g.setFeedback(fmt.Sprintf("%s is a decoy!", w.Text), core.ColorOrange)
		return
	case w.State(now) != whcore.Clickable:
		g.setFeedback("Too early", core.ColorYellow)
		return
	}

	if !g.sched.Resolve(w.Text, now) {
		g.setFeedback("Miss", core.ColorRed)
		return
	}

	since := g.combo.SinceLastFind(now)
	g.combo.RecordFind(now)
	g.correct++

	d := g.rules.ScoreSingleFind(scoring.FindInput{
		Word:          w,
		TimeRemaining: g.timeRemaining(),
		HasTimeLimit:  g.params.HasTimeLimit(),
		ComboCount:    g.combo.Count(),
		TotalAttempts: g.attempts,
		CorrectFinds:  g.correct,
		Palette:       g.palette,
		SinceLastFind: since,
	})
	g.score += d.Points

	msg := fmt.Sprintf("%s +%d", w.Text, d.Points)
	if d.Multiplier > 1 {
		msg += fmt.Sprintf(" (x%.2f)", d.Multiplier)
	}
	g.setFeedback(msg, core.ColorBrightGreen)
}

// moveCursor moves the keyboard cursor inside the playable band.
func (g *Game) moveCursor(in core.InputFrame) {
	c := g.cursor
	if in.Has(core.ActionUp) {
		c.Row--
	}
	if in.Has(core.ActionDown) {
		c.Row++
	}
	if in.Has(core.ActionLeft) {
		c.Col--
	}
	if in.Has(core.ActionRight) {
		c.Col++
	}
	g.cursor = g.clampCursor(c)
}

func (g *Game) clampCursor(c whcore.Cell) whcore.Cell {
	grid := g.sched.Grid()
	c.Col = core.Clamp(c.Col, 0, max(grid.Cols-1, 0))
	c.Row = core.Clamp(c.Row, grid.Top, max(grid.Rows-grid.Bottom-1, grid.Top))
	return c
}

func (g *Game) setFeedback(msg string, c core.Color) {
	g.feedback = msg
	g.feedbackColor = c
	g.feedbackUntil = g.elapsed + feedbackDuration
}
