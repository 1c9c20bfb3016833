package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katmatt/ishido/internal/config"
	"github.com/katmatt/ishido/internal/core"
	"github.com/katmatt/ishido/internal/game"
	"github.com/katmatt/ishido/internal/platform/tui"
	"github.com/katmatt/ishido/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

Controls:
  Mouse      - Click a cell to place the pending stone
  H          - Toggle valid-move hints
  N          - New game
  Q/Ctrl+C   - Quit

Valid-move hints also appear on their own after a few seconds of
inactivity (configurable).

Examples:
  ishido play
  ishido play --seed 42
  ishido play --config ./my-ishido.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game.SetTheme(buildTheme(cfg.Theme))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, runtimeCfg, cfg.Hint)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// colorNames maps YAML color names to the palette. Unknown names keep the
// default for that slot.
var colorNames = map[string]core.Color{
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"orange":         core.ColorOrange,
	"bright-red":     core.ColorBrightRed,
	"bright-green":   core.ColorBrightGreen,
	"bright-yellow":  core.ColorBrightYellow,
	"bright-blue":    core.ColorBrightBlue,
	"bright-magenta": core.ColorBrightMagenta,
	"bright-cyan":    core.ColorBrightCyan,
	"bright-white":   core.ColorBrightWhite,
}

// buildTheme maps the YAML theme onto the renderer's theme.
func buildTheme(tc config.ThemeConfig) game.Theme {
	theme := game.DefaultTheme()
	for i, sym := range tc.Symbols {
		if i >= len(theme.Symbols) {
			break
		}
		runes := []rune(sym)
		if len(runes) > 0 {
			theme.Symbols[i] = runes[0]
		}
	}
	for i, name := range tc.Colors {
		if i >= len(theme.Colors) {
			break
		}
		if c, ok := colorNames[name]; ok {
			theme.Colors[i] = c
		}
	}
	theme.ShowBackgrounds = tc.ShowBackgrounds
	return theme
}
