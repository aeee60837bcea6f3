package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordhunt/internal/core"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
	"github.com/vovakirdan/wordhunt/internal/registry"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

// levelReporter is implemented by games that emit per-level results.
type levelReporter interface {
	DrainBreakdowns() []scoring.Breakdown
	Palette() whcore.Palette
	Level() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	opts       Options
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	sessionID  string
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		opts:       opts,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		sessionID:  storage.NewSessionID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.logger().Debug("game started", "game", m.game.ID(), "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu is only offered when nothing is at stake
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can re-layout keep their progress
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A restart begins a new run
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.sessionID = storage.NewSessionID()
		m.scoreSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.saveLevels()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveLevels persists the level results produced by the last step.
func (m Model) saveLevels() {
	lr, ok := m.game.(levelReporter)
	if !ok {
		return
	}
	for _, b := range lr.DrainBreakdowns() {
		if m.opts.Store == nil {
			continue
		}
		if _, err := m.opts.Store.SaveLevelResult(m.sessionID, m.game.ID(), lr.Palette().Name, b); err != nil {
			m.opts.logger().Warn("could not save level result", "level", b.Level, "error", err)
		}
	}
}

// saveScore persists the final score of a run. Empty runs are skipped.
func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
	}
	if lr, ok := m.game.(levelReporter); ok {
		entry.Level = lr.Level()
		entry.Palette = lr.Palette().Name
	}
	if _, err := m.opts.Store.SaveScore(entry); err != nil {
		m.opts.logger().Warn("could not save score", "game", entry.GameID, "error", err)
		return
	}
	m.opts.logger().Debug("score saved", "game", entry.GameID, "score", entry.Score, "session", m.sessionID)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".wordhunt", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.gameState.Paused {
		out = overlayHelp(out, m.help.View(m.keyMapper.Keys()))
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It returns true when the player asked to go back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
