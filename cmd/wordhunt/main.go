// wordhunt is a terminal word-spotting game: hidden words surface among
// shuffling letters and you click them before they fade.
//
// Usage:
//
//	wordhunt play            - Play the campaign (or --endless)
//	wordhunt menu            - Start menu to pick mode, level and text size
//	wordhunt serve           - Start SSH server for remote play
//	wordhunt scores          - Show high scores
//	wordhunt words           - Preview the word pool of a level
//	wordhunt howto           - Show the rules
//	wordhunt modes           - List game modes
//	wordhunt config          - Print the active configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 10)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.wordhunt/scores.db)
//	--config <path>      - Use a specific wordhunt.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--words <path>       - Word list file (one word per line)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/words"
	"github.com/vovakirdan/wordhunt/internal/platform/tui"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

const defaultDBPath = "~/.wordhunt/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWords      string
	flagLogLevel   string
)

// app holds what every command shares, built before any command runs.
var app struct {
	env    config.Env
	cfg    config.WordHuntConfig
	words  *words.List
	logger *log.Logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordhunt",
	Short: "Word Hunt - spot hidden words in your terminal",
	Long: `Word Hunt fills your terminal with shuffling letters. Real words surface
for a few seconds at a time; click them (or move the cursor and press space)
before they fade. Decoys look almost right and score nothing.

Available commands:
  play     - Play a game directly
  menu     - Interactive mode, level and text size picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  words    - Preview the word pool of a level
  howto    - Show the rules
  modes    - List game modes
  config   - Print the active configuration

Examples:
  wordhunt play
  wordhunt play --endless --level 5
  wordhunt menu --difficulty hard
  wordhunt serve --ssh :2222
  wordhunt scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default "+defaultDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a wordhunt.yaml config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Word list file, one word per line")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(howtoCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup reads the environment, the config file and the word list.
// Flags win over environment variables.
func setup(_ *cobra.Command, _ []string) error {
	app.env = config.LoadEnv()

	app.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordhunt",
	})
	if name := config.Or(flagLogLevel, app.env.LogLevel); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", name, err)
		}
		app.logger.SetLevel(level)
	}

	cfg, err := config.LoadWordHunt(config.Or(flagConfig, app.env.ConfigPath))
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}
	app.cfg = cfg

	list, err := words.Load(config.Or(flagWords, app.env.WordsFile))
	if err != nil {
		return err
	}
	app.words = list

	app.logger.Debug("configured",
		"preset", cfg.Difficulty.Preset,
		"start_level", cfg.Difficulty.StartLevel,
		"palette", cfg.Board.Palette,
		"words", list.Len(),
	)
	return nil
}

// dbPath resolves the scores database location.
func dbPath() string {
	return config.Or(flagDBPath, config.Or(app.env.DBPath, defaultDBPath))
}

// openStore opens the scores database. Failure only disables persistence.
func openStore() *storage.Store {
	store, err := storage.Open(dbPath())
	if err != nil {
		app.logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// options bundles the shared state for the TUI.
func options(store *storage.Store) tui.Options {
	return tui.Options{
		Config: app.cfg,
		Words:  app.words,
		Store:  store,
		Logger: app.logger,
	}
}
