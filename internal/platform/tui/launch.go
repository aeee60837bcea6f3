package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/words"
	"github.com/vovakirdan/wordhunt/internal/registry"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

// Options carries everything the UI needs to start games.
type Options struct {
	Config config.WordHuntConfig
	Words  *words.List
	Store  *storage.Store // nil disables persistence
	Logger *log.Logger
}

// Selection is what the player picked in the menu.
type Selection struct {
	GameID     string
	StartLevel int // 0 = configured start level
	Palette    whcore.Palette
}

// DefaultSelection returns a campaign selection using the configured palette.
func (o Options) DefaultSelection() Selection {
	return Selection{
		GameID:  wordhunt.IDCampaign,
		Palette: o.Config.Board.PaletteValue(),
	}
}

// NewGame creates and configures the selected game.
func (o Options) NewGame(sel Selection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	if wh, ok := game.(*wordhunt.Game); ok {
		wh.SetConfig(o.Config)
		if sel.Palette.Name != "" {
			wh.SetPalette(sel.Palette)
		}
		wh.SetStartLevel(sel.StartLevel)
		wh.SetWordList(o.Words)
		if o.Store != nil {
			wh.AttachProfile(o.Store)
		}
	}
	return game, nil
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
