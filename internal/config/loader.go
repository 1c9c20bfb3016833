package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platform configuration.
// Search order: customPath -> ~/.ishido/config.yaml -> ./configs/ishido.yaml
// -> built-in defaults. Only an explicitly given customPath surfaces errors;
// the fallback locations are best-effort.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/ishido.yaml"); err == nil {
		if cfg, err := parse(data, "configs/ishido.yaml"); err == nil {
			return cfg, nil
		}
	}

	return DefaultConfig(), nil
}

// parse unmarshals YAML over the defaults, so omitted sections keep their
// built-in values.
func parse(data []byte, path string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Theme.Symbols) != 6 {
		return Config{}, fmt.Errorf("config %s: theme.symbols needs exactly 6 entries, got %d", path, len(cfg.Theme.Symbols))
	}
	if len(cfg.Theme.Colors) != 6 {
		return Config{}, fmt.Errorf("config %s: theme.colors needs exactly 6 entries, got %d", path, len(cfg.Theme.Colors))
	}
	if cfg.Hint.DelaySeconds <= 0 {
		cfg.Hint.DelaySeconds = DefaultConfig().Hint.DelaySeconds
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ishido", filename)
}
