package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed howto.md
var howtoMarkdown string

var flagHowtoPlain bool

var howtoCmd = &cobra.Command{
	Use:   "howto",
	Short: "Show the rules",
	Args:  cobra.NoArgs,
	RunE:  runHowto,
}

func init() {
	howtoCmd.Flags().BoolVar(&flagHowtoPlain, "plain", false, "Print the raw markdown")
}

func runHowto(_ *cobra.Command, _ []string) error {
	if flagHowtoPlain {
		fmt.Print(howtoMarkdown)
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = min(w, 100)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := renderer.Render(howtoMarkdown)
	if err != nil {
		return fmt.Errorf("rendering rules: %w", err)
	}
	fmt.Print(out)
	return nil
}
