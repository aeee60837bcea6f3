package wordhunt

import (
	"fmt"
	"time"

	"github.com/vovakirdan/wordhunt/internal/core"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

const helpLine = " click/space: select  arrows: move  p: pause  r: restart  esc: menu"

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %d columns for %s letters", g.params.MaxLength*g.palette.CellWidth, g.palette.Name))
		return
	}

	now := g.now()
	g.renderBackground(dst)
	g.renderWords(dst, now)
	g.renderCursor(dst)
	dst.DrawTextColor(0, dst.Height()-1, helpLine, core.ColorDim)

	switch {
	case g.phase == phaseLevelClear:
		g.renderSummary(dst, fmt.Sprintf("Level %d cleared!", g.level), "Enter to continue")
	case g.phase == phaseWon:
		g.renderSummary(dst, "Campaign complete!", g.finalLine())
	case g.phase == phaseGameOver:
		g.renderSummary(dst, "Game Over", g.finalLine())
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// screenPos returns where the letter of a grid cell is drawn.
func (g *Game) screenPos(c whcore.Cell) (int, int) {
	cw, ch := g.palette.CellWidth, g.palette.CellHeight
	return c.Col*cw + (cw-1)/2, c.Row*ch + (ch-1)/2
}

// renderHUD draws the status line and the feedback line.
func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf("Word Hunt %d/%d", g.level, CampaignLevels)
	if g.mode == ModeEndless {
		title = fmt.Sprintf("Word Hunt (Endless) L%d", g.level)
	}

	hud := fmt.Sprintf(" %s [%s]  Score: %d", title, g.params.Difficulty, g.score)
	if g.sched != nil {
		total := g.targetCount()
		hud += fmt.Sprintf("  Words: %d/%d", total-g.sched.Remaining(), total)
	}
	if c := g.combo.Count(); c > 0 {
		hud += fmt.Sprintf("  Combo: %d", c)
	}
	if g.params.HasTimeLimit() {
		hud += fmt.Sprintf("  Time: %s", formatClock(g.timeRemaining()))
	}
	if g.attempts > 0 {
		hud += fmt.Sprintf("  Acc: %.0f%%", float64(g.correct)*100/float64(g.attempts))
	}
	if g.totalsLoaded && g.totals.BestScore > 0 {
		hud += fmt.Sprintf("  Best: %d", g.totals.BestScore)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	if g.feedback != "" && g.elapsed < g.feedbackUntil {
		dst.DrawTextColor(1, 1, g.feedback, g.feedbackColor)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// targetCount returns the number of real words in the level.
func (g *Game) targetCount() int {
	n := 0
	for _, w := range g.sched.Words() {
		if !w.Decoy {
			n++
		}
	}
	return n
}

// renderBackground draws the shuffling filler letters.
func (g *Game) renderBackground(dst *core.Screen) {
	grid := g.sched.Grid()
	for r := grid.Top; r < grid.Rows-grid.Bottom && r < len(g.background); r++ {
		for c, letter := range g.background[r] {
			x, y := g.screenPos(whcore.C(c, r))
			dst.SetColor(x, y, letter, core.ColorGray)
		}
	}
}

// fadeWarning is how long before closing a clickable word dims.
const fadeWarning = 750 * time.Millisecond

// renderWords draws the visible words over the background.
func (g *Game) renderWords(dst *core.Screen, now time.Time) {
	for _, w := range g.sched.Words() {
		color := core.ColorWhite
		switch w.State(now) {
		case whcore.Pending:
		case whcore.Clickable:
			color = core.ColorBrightYellow
			if w.ClickableLeft(now) < fadeWarning {
				color = core.ColorYellow
			}
		default:
			continue
		}
		for i, letter := range []rune(w.Text) {
			x, y := g.screenPos(whcore.C(w.Origin.Col+i, w.Origin.Row))
			dst.SetColor(x, y, letter, color)
		}
	}
}

// renderCursor highlights the keyboard cursor cell.
func (g *Game) renderCursor(dst *core.Screen) {
	if g.phase != phasePlaying {
		return
	}
	x, y := g.screenPos(g.cursor)
	cell := dst.GetCell(x, y)
	dst.SetColor(x, y, cell.Rune, core.ColorBrightCyan)
	if g.palette.CellWidth >= 3 {
		dst.SetColor(x-1, y, '[', core.ColorCyan)
		dst.SetColor(x+1, y, ']', core.ColorCyan)
	}
}

// renderSummary draws the result box of the last finished level.
func (g *Game) renderSummary(dst *core.Screen, title, footer string) {
	lines := []string{title, ""}
	if b, ok := g.lastBreakdown(); ok {
		lines = append(lines,
			fmt.Sprintf("Words      %d/%d", b.WordsFound, b.WordsTotal),
			fmt.Sprintf("Accuracy   %.0f%%", b.Accuracy),
			fmt.Sprintf("Time       %s", formatClock(b.LevelTime)),
			fmt.Sprintf("Base       %d", b.BaseScore),
			fmt.Sprintf("Bonuses    %d", b.Subtotal-b.BaseScore),
			fmt.Sprintf("Multiplier x%.2f", b.ComboMultiplier*b.LevelMultiplier*b.PaletteMultiplier),
			fmt.Sprintf("Level      %d", b.Total),
			fmt.Sprintf("Grade      %s", b.Grade),
		)
	}
	lines = append(lines, "", footer)
	g.renderBox(dst, lines)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	g.renderBox(dst, []string{line1, "", line2})
}

// renderBox draws a bordered box with centered lines.
func (g *Game) renderBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (dst.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

func (g *Game) finalLine() string {
	line := fmt.Sprintf("Final Score: %d  (R to restart)", g.score)
	if g.NewBest() {
		line = "New best! " + line
	}
	return line
}

// formatClock renders a duration as m:ss.
func formatClock(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
