package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rectangles/pkg/errors"
)

// Config holds display defaults for the CLI. It only shapes presentation:
// output format, SVG scale, and scene decorations. Flags override config
// values; config values override built-ins.
type Config struct {
	Format string  `toml:"format"` // "text" or "json"
	Scale  float64 `toml:"scale"`  // SVG units per coordinate unit
	Grid   bool    `toml:"grid"`   // draw unit grid lines in SVG scenes
	Labels bool    `toml:"labels"` // draw A/B labels in SVG scenes
}

// DefaultConfig returns the built-in display defaults.
func DefaultConfig() Config {
	return Config{
		Format: FormatText,
		Scale:  40,
		Grid:   false,
		Labels: true,
	}
}

// LoadConfig reads display defaults from the TOML file at path. A missing
// file is not an error and yields the built-in defaults. A file that fails
// to decode or carries invalid values is reported with ErrCodeInvalidConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return DefaultConfig(), errors.New(errors.ErrCodeInvalidConfig, "%s: unknown format %q", path, cfg.Format)
	}
	if cfg.Scale <= 0 {
		return DefaultConfig(), errors.New(errors.ErrCodeInvalidConfig, "%s: scale must be positive, got %v", path, cfg.Scale)
	}

	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/rectangles/config.toml). Returns "" if no home directory can
// be determined, which LoadConfig treats as "use defaults".
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
