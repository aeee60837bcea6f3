package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
)

// Main menu entries.
const (
	itemCampaign = iota
	itemEndless
	itemSelectLevel
	itemPalette
	itemScores
	itemQuit
	itemCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode, level and palette picker.
type MenuModel struct {
	opts          Options
	cursor        int
	levelCursor   int
	inLevelSelect bool
	palette       int // Index into whcore.Palettes()
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	totals        *scoring.ProfileTotals
	selected      *Selection
	quitting      bool
	scoreboard    bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(opts Options, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		opts:      opts,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	current := opts.Config.Board.PaletteValue()
	for i, p := range whcore.Palettes() {
		if p.Name == current.Name {
			m.palette = i
		}
	}

	if opts.Store != nil {
		if t, err := opts.Store.GetTotals(); err == nil {
			m.totals = &t
		} else {
			opts.logger().Warn("could not load profile totals", "error", err)
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount

	case MenuActionLeft:
		if m.cursor == itemPalette {
			m.cyclePalette(-1)
		}

	case MenuActionRight:
		if m.cursor == itemPalette {
			m.cyclePalette(1)
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case itemCampaign:
			return m.choose(wordhunt.IDCampaign, 0)
		case itemEndless:
			return m.choose(wordhunt.IDEndless, 0)
		case itemSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case itemPalette:
			m.cyclePalette(1)
		case itemScores:
			m.scoreboard = true
			return m, tea.Quit
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < wordhunt.CampaignLevels-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(wordhunt.IDCampaign, m.levelCursor+1)
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

func (m *MenuModel) cyclePalette(delta int) {
	n := len(whcore.Palettes())
	m.palette = (m.palette + delta + n) % n
}

func (m MenuModel) choose(gameID string, level int) (tea.Model, tea.Cmd) {
	m.selected = &Selection{
		GameID:     gameID,
		StartLevel: level,
		Palette:    whcore.Palettes()[m.palette],
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("W O R D   H U N T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Click the hidden words before they fade", m.width))
	b.WriteString("\n\n")

	p := whcore.Palettes()[m.palette]
	labels := [itemCount]string{
		itemCampaign:    fmt.Sprintf("Campaign (%d levels)", wordhunt.CampaignLevels),
		itemEndless:     "Endless",
		itemSelectLevel: "Select Level...",
		itemPalette:     fmt.Sprintf("Text size: < %s x%.1f >", p.Name, p.Multiplier),
		itemScores:      "High Scores",
		itemQuit:        "Quit",
	}
	for i, label := range labels {
		b.WriteString(centerText(m.menuLine(i == m.cursor, label), m.width))
		b.WriteString("\n")
	}

	if m.totals != nil && m.totals.Games > 0 {
		b.WriteString("\n")
		stats := fmt.Sprintf("Runs %d  Levels %d  Words %d  Best %d",
			m.totals.Games, m.totals.Levels, m.totals.WordsFound, m.totals.BestScore)
		b.WriteString(centerText(menuDimStyle.Render(stats), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Left/Right: Text size  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i := 0; i < wordhunt.CampaignLevels; i++ {
		p := whcore.ParamsForLevel(i + 1)
		limit := "untimed"
		if p.HasTimeLimit() {
			limit = fmt.Sprintf("%ds", int(p.TimeLimit.Seconds()))
		}
		line := fmt.Sprintf("%2d. %-8s %2d words  %d-%d letters  %s",
			i+1, p.Difficulty, p.TargetWords, p.MinLength, p.MaxLength, limit)
		b.WriteString(centerText(m.menuLine(i == m.levelCursor, line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

func (m MenuModel) menuLine(active bool, label string) string {
	if active {
		return menuCursor.Render("> " + label)
	}
	return "  " + label
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		r.WantsScoreboard = true
	case m.selected != nil:
		r.Selection = *m.selected
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(opts Options, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(opts, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
