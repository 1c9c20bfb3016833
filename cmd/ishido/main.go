// ishido is a terminal rendition of the classic Ishido tile-placement
// puzzle: place stones from a shuffled stack onto a 12x8 board next to
// matching neighbors.
//
// Usage:
//
//	ishido play              - Play in the local terminal
//	ishido scores            - Show high scores
//	ishido serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.ishido/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ishido",
	Short: "Ishido - The classic stone-matching puzzle in your terminal",
	Long: `Ishido is a terminal-based rendition of the classic tile-placement
puzzle. Draw stones from a shuffled stack and place them on the board
next to stones that share a color or a symbol.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  ishido play
  ishido play --seed 42
  ishido scores --tui
  ishido serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ishido/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
