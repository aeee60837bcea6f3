package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordhunt/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the active configuration",
	Long: `Print the configuration Word Hunt would run with, after the config file,
.env and --difficulty have been applied.

Use --defaults to print the built-in wordhunt.yaml, a starting point for
~/.wordhunt/configs/wordhunt.yaml.

Examples:
  wordhunt config
  wordhunt config --difficulty hard
  wordhunt config --defaults > ~/.wordhunt/configs/wordhunt.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(app.cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
