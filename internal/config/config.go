// Package config provides YAML-based configuration loading for the Ishido
// platform layer: theme glyphs and hint timing.
package config

// Config contains all platform configuration.
type Config struct {
	Hint  HintConfig  `yaml:"hint"`
	Theme ThemeConfig `yaml:"theme"`
}

// HintConfig controls the deferred valid-move hint reveal.
type HintConfig struct {
	// Auto enables the automatic hint reveal after a period of inactivity.
	Auto bool `yaml:"auto"`
	// DelaySeconds is how long after a placement (or game start) the hints
	// appear.
	DelaySeconds int `yaml:"delay_seconds"`
}

// ThemeConfig controls how stones and cells are drawn. It never affects the
// game rules.
type ThemeConfig struct {
	// Symbols are the six glyphs used for stone symbols, in symbol order.
	Symbols []string `yaml:"symbols"`
	// Colors are the six stone color names, in color order. Valid names:
	// red, green, yellow, blue, magenta, cyan, white, orange and their
	// bright- variants.
	Colors []string `yaml:"colors"`
	// ShowBackgrounds toggles the decorative per-cell background marks.
	ShowBackgrounds bool `yaml:"show_backgrounds"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Hint: HintConfig{
			Auto:         true,
			DelaySeconds: 5,
		},
		Theme: ThemeConfig{
			Symbols:         []string{"●", "▲", "■", "◆", "★", "✚"},
			Colors:          []string{"red", "green", "bright-yellow", "bright-blue", "magenta", "cyan"},
			ShowBackgrounds: true,
		},
	}
}
