package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Word Hunt with a mode and level picker",
	Long: `Start Word Hunt in interactive menu mode.

Pick campaign, endless or a specific level, and choose the text size with
left/right. After a game ends (Esc), you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change text size
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  wordhunt menu
  wordhunt menu --fps 20
  wordhunt menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	opts := options(store)
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(opts, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := opts.NewGame(result.Selection)
		if err != nil {
			app.logger.Error("could not create game", "error", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, opts, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
