package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	whcore "github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

var flagWordsLevel int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Preview the word pool of a level",
	Long: `Show the parameters of a level and one pool of words drawn for it.
Use --seed to reproduce a pool.

Examples:
  wordhunt words --level 1
  wordhunt words --level 12 --seed 7
  wordhunt words --words ./my-words.txt --level 4`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsLevel, "level", 1, "Level to preview")
}

func runWords(_ *cobra.Command, _ []string) error {
	if flagWordsLevel < 1 {
		return fmt.Errorf("level must be at least 1")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	p := whcore.ParamsForLevel(flagWordsLevel)
	pool := app.words.SelectPool(p, rng)

	limit := "none"
	if p.HasTimeLimit() {
		limit = p.TimeLimit.String()
	}

	fmt.Printf("Level %d (%s)\n", p.Level, p.Difficulty)
	fmt.Println()
	fmt.Printf("  Words:        %d, %d-%d letters\n", p.TargetWords, p.MinLength, p.MaxLength)
	fmt.Printf("  Time limit:   %s\n", limit)
	fmt.Printf("  Clickable:    %s (cooldown %s)\n", p.ClickableWindow(), p.Cooldown())
	fmt.Printf("  Letter value: %d\n", p.Difficulty.LetterPoints())
	fmt.Println()
	fmt.Printf("Targets: %s\n", strings.Join(pool.Targets, " "))
	fmt.Printf("Decoys:  %s\n", strings.Join(pool.Decoys, " "))
	fmt.Printf("\n(seed %d, %d words in list)\n", seed, app.words.Len())
	return nil
}
