package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/collar-pulse/config.toml
//  2. ~/.config/collar-pulse/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes TOML over the defaults, so a file only needs the
// keys it changes.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	def := chart.DefaultConfig()

	return &Config{
		General: GeneralConfig{
			StartScreen: screen.Home,
			LogLevel:    "info",
			LogFile:     filepath.Join(xdgCacheHome(home), "collar-pulse", "collar-pulse.log"),
		},
		Stats: StatsConfig{
			RefreshInterval:  Duration{2 * time.Second},
			SeriesLength:     20,
			HistoryRetention: Duration{10 * time.Minute},
		},
		Chart: ChartConfig{
			SmoothCurve:           def.SmoothCurve,
			ShowAxis:              def.ShowAxis,
			AxisLabelsVisible:     def.AxisLabelsVisible,
			StrokeColor:           def.StrokeColor,
			ViewportWidthFraction: def.ViewportWidthFraction,
			Height:                4,
		},
		Theme: ThemeConfig{
			Name: "night",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("COLLAR_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("COLLAR_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("COLLAR_START_SCREEN"); v != "" {
		id, err := screen.Parse(v)
		if err != nil {
			return err
		}
		cfg.General.StartScreen = id
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "collar-pulse", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "collar-pulse", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
