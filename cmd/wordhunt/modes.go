package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes",
	Long: `List the game modes that can be passed to 'wordhunt play'.

Example:
  wordhunt play wordhunt_endless`,
	Args: cobra.NoArgs,
	Run:  runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}
}
