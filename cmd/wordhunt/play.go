package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt"
	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
	"github.com/vovakirdan/wordhunt/internal/platform/tui"
	"github.com/vovakirdan/wordhunt/internal/registry"
)

var (
	flagEndless bool
	flagLevel   int
	flagPalette string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Word Hunt",
	Long: `Start playing Word Hunt directly.

Controls:
  Mouse click       - Select the word under the pointer
  Arrows/WASD       - Move the cursor
  Space/Enter       - Select the word under the cursor
  P                 - Pause
  R                 - Restart (after game over)
  Esc               - Back to menu (when paused or over)
  Q/Ctrl+C          - Quit

Text sizes:
  large   - x1.0 score, 3 columns per letter
  medium  - x1.5 score, 2 columns per letter
  small   - x2.0 score, 1 column per letter

Examples:
  wordhunt play
  wordhunt play wordhunt_endless
  wordhunt play --level 5
  wordhunt play --endless --palette small
  wordhunt play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode (no time limit, no last level)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (0 = configured)")
	playCmd.Flags().StringVar(&flagPalette, "palette", "", "Text size: large, medium, small")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown mode %q (run 'wordhunt modes' to list them)", args[0])
		}
		flagEndless = flagEndless || args[0] == wordhunt.IDEndless
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	opts := options(store)

	sel := opts.DefaultSelection()
	if flagEndless {
		sel.GameID = wordhunt.IDEndless
	}
	if flagLevel < 0 || (!flagEndless && flagLevel > wordhunt.CampaignLevels) {
		return fmt.Errorf("level must be between 1 and %d", wordhunt.CampaignLevels)
	}
	sel.StartLevel = flagLevel
	if flagPalette != "" {
		p, ok := whcore.PaletteByName(flagPalette)
		if !ok {
			return fmt.Errorf("unknown palette %q (want large, medium or small)", flagPalette)
		}
		sel.Palette = p
	}

	game, err := opts.NewGame(sel)
	if err != nil {
		return err
	}

	if _, err := tui.Run(game, opts, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
