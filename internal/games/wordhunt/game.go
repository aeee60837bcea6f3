// Package wordhunt implements the Word Hunt game: letters fill the board and
// hidden words surface among them for a moment; the player clicks them
// before they fade.
//
// The game owns a session clock that only runs while unpaused and feeds it
// to the scheduler, so pausing never eats into clickable windows, cooldowns
// or the level time limit.
package wordhunt

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/words"
	"github.com/vovakirdan/wordhunt/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs.
const (
	IDCampaign = "wordhunt"
	IDEndless  = "wordhunt_endless"
)

// CampaignLevels is the number of levels in a campaign run.
const CampaignLevels = 15

// Pacing of the session.
const (
	ForceAfter       = 3 * time.Second // Empty board time before a word is forced on
	SummaryDuration  = 4 * time.Second // Level summary shown before the next level
	feedbackDuration = 1500 * time.Millisecond
)

// epoch anchors the session clock. Any non-zero instant works.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// phase is the coarse game state.
type phase uint8

const (
	phasePlaying phase = iota
	phaseLevelClear
	phaseGameOver
	phaseWon
)

// ProfileReader provides lifetime player statistics.
type ProfileReader interface {
	GetTotals() (scoring.ProfileTotals, error)
}

// Game implements the Word Hunt game.
type Game struct {
	mode       Mode
	cfg        config.WordHuntConfig
	palette    whcore.Palette
	rules      scoring.Rules
	list       *words.List
	profile    ProfileReader
	startLevel int // 0 means use the config

	rng      *rand.Rand
	anim     *rand.Rand
	tick     uint64
	tickRate int

	// Session clock, advanced only while playing and unpaused
	elapsed       time.Duration
	levelStart    time.Duration
	lastVisibleAt time.Duration
	lastAnimAt    time.Duration

	screenW  int
	screenH  int
	tooSmall bool

	level      int
	params     whcore.LevelParameters
	sched      *whcore.Scheduler
	background [][]rune
	cursor     whcore.Cell

	combo    scoring.ComboState
	attempts int
	correct  int
	score    int

	phase      phase
	paused     bool
	clearTicks int

	feedback      string
	feedbackColor core.Color
	feedbackUntil time.Duration

	history []scoring.Breakdown
	pending []scoring.Breakdown

	totals       scoring.ProfileTotals
	totalsLoaded bool
}

// New creates a new campaign mode game.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

func newGame(mode Mode) *Game {
	cfg := config.DefaultWordHuntConfig()
	return &Game{
		mode:    mode,
		cfg:     cfg,
		palette: cfg.Board.PaletteValue(),
		rules:   cfg.Scoring.Rules(),
		list:    words.Default(),
	}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// SetConfig applies a configuration. Takes effect on the next Reset.
func (g *Game) SetConfig(cfg config.WordHuntConfig) {
	g.cfg = cfg
	g.palette = cfg.Board.PaletteValue()
	g.rules = cfg.Scoring.Rules()
}

// SetPalette overrides the configured palette. Takes effect on the next Reset.
func (g *Game) SetPalette(p whcore.Palette) {
	g.palette = p
}

// Palette returns the palette in use.
func (g *Game) Palette() whcore.Palette {
	return g.palette
}

// SetStartLevel overrides the configured start level. 0 means use the config.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = max(level, 0)
}

// SetWordList replaces the dictionary. nil restores the embedded list.
func (g *Game) SetWordList(l *words.List) {
	if l == nil || l.Len() == 0 {
		l = words.Default()
	}
	g.list = l
}

// AttachProfile sets the source of lifetime statistics shown in the HUD
// and used to flag a new personal best.
func (g *Game) AttachProfile(p ProfileReader) {
	g.profile = p
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Word Hunt (Endless)"
	}
	return "Word Hunt"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.anim = rand.New(rand.NewSource(g.rng.Int63()))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.elapsed = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.score = 0
	g.phase = phasePlaying
	g.paused = false
	g.history = nil
	g.pending = nil
	g.feedback = ""
	g.loadTotals()

	level := g.cfg.Difficulty.StartLevel
	if g.startLevel > 0 {
		level = g.startLevel
	}
	if g.mode == ModeCampaign {
		level = min(level, CampaignLevels)
	}
	g.loadLevel(max(level, 1))
}

// loadTotals refreshes the profile statistics, if a profile is attached.
func (g *Game) loadTotals() {
	g.totalsLoaded = false
	if g.profile == nil {
		return
	}
	t, err := g.profile.GetTotals()
	if err != nil {
		return
	}
	g.totals = t
	g.totalsLoaded = true
}

// Resize adapts the board to a new screen size without restarting.
// Words that no longer fit return to hiding.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.sched == nil {
		return
	}
	g.sched.ResyncDimensions(g.viewport())
	g.buildBackground()
	g.checkSize()
}

// viewport describes the screen to the scheduler in terminal cells.
func (g *Game) viewport() whcore.Viewport {
	return whcore.Viewport{
		Width:          g.screenW,
		Height:         g.screenH,
		CellWidth:      g.palette.CellWidth,
		CellHeight:     g.palette.CellHeight,
		TopReserved:    g.cfg.Board.HUDTop,
		BottomReserved: g.cfg.Board.HUDBottom,
	}
}

// checkSize pauses play while the board cannot hold the level's words.
func (g *Game) checkSize() {
	grid := g.sched.Grid()
	g.tooSmall = grid.Cols < g.params.MaxLength || grid.PlayableRows() < 2
	g.cursor = g.clampCursor(g.cursor)
}

// tickDuration is the session time covered by one Step.
func (g *Game) tickDuration() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

// now returns the session clock as an instant.
func (g *Game) now() time.Time {
	return epoch.Add(g.elapsed)
}

// levelElapsed is the unpaused time spent in the current level.
func (g *Game) levelElapsed() time.Duration {
	return g.elapsed - g.levelStart
}

// timeRemaining is the time left on a timed level, or 0.
func (g *Game) timeRemaining() time.Duration {
	if !g.params.HasTimeLimit() {
		return 0
	}
	return max(0, g.params.TimeLimit-g.levelElapsed())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && (g.phase == phaseGameOver || g.phase == phaseWon) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase == phasePlaying {
		g.paused = !g.paused
	}

	if g.phase == phaseGameOver || g.phase == phaseWon || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.phase == phaseLevelClear {
		g.clearTicks++
		if in.Has(core.ActionConfirm) || in.Has(core.ActionClick) ||
			time.Duration(g.clearTicks)*g.tickDuration() >= SummaryDuration {
			g.loadLevel(g.level + 1)
		}
		return core.StepResult{State: g.State()}
	}

	g.elapsed += g.tickDuration()
	now := g.now()

	g.sched.SetSpeedMultiplier(g.combo.SpeedMultiplier())
	g.sched.Advance(now)
	g.animate()
	g.moveCursor(in)

	switch {
	case in.Has(core.ActionClick):
		g.clickScreen(in.Click, now)
	case in.Has(core.ActionConfirm):
		g.clickCell(g.cursor, now)
	}

	switch {
	case g.sched.Remaining() == 0:
		g.finishLevel(true)
	case g.params.HasTimeLimit() && g.levelElapsed() >= g.params.TimeLimit:
		g.finishLevel(false)
	default:
		g.keepBoardAlive(now)
	}

	return core.StepResult{State: g.State()}
}

// keepBoardAlive forces a word on when the board has been empty too long.
func (g *Game) keepBoardAlive(now time.Time) {
	if g.sched.VisibleCount(now) > 0 {
		g.lastVisibleAt = g.elapsed
		return
	}
	if g.elapsed-g.lastVisibleAt >= ForceAfter && g.sched.ForceSurfaceOne(now) {
		g.lastVisibleAt = g.elapsed
	}
}

// animate shuffles part of the background letters every animation interval.
func (g *Game) animate() {
	if g.elapsed-g.lastAnimAt < g.params.AnimationInterval {
		return
	}
	g.lastAnimAt = g.elapsed

	rows := len(g.background)
	if rows == 0 || len(g.background[0]) == 0 {
		return
	}
	cols := len(g.background[0])
	for i := max(1, rows*cols/20); i > 0; i-- {
		g.background[g.anim.Intn(rows)][g.anim.Intn(cols)] = randomLetter(g.anim)
	}
}

// buildBackground fills the board with random letters.
func (g *Game) buildBackground() {
	grid := g.sched.Grid()
	g.background = make([][]rune, max(grid.Rows, 0))
	for r := range g.background {
		g.background[r] = make([]rune, max(grid.Cols, 0))
		for c := range g.background[r] {
			g.background[r][c] = randomLetter(g.anim)
		}
	}
}

func randomLetter(rng *rand.Rand) rune {
	return rune('A' + rng.Intn(26))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseGameOver || g.phase == phaseWon,
		Paused:   g.paused,
	}
}

// DrainBreakdowns returns the level results produced since the last call.
func (g *Game) DrainBreakdowns() []scoring.Breakdown {
	out := g.pending
	g.pending = nil
	return out
}

// History returns every level result of the current run.
func (g *Game) History() []scoring.Breakdown {
	return append([]scoring.Breakdown(nil), g.history...)
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.level
}

// NewBest reports whether the finished run beat the profile's best score.
func (g *Game) NewBest() bool {
	return g.State().GameOver && g.totalsLoaded && g.score > g.totals.BestScore
}
