// Package config loads collar-pulse settings from TOML with env overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/sample"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// Config is the root of config.toml.
type Config struct {
	General GeneralConfig  `toml:"general"`
	Stats   StatsConfig    `toml:"stats"`
	Chart   ChartConfig    `toml:"chart"`
	Theme   ThemeConfig    `toml:"theme"`
	Metrics []MetricConfig `toml:"metrics"`
}

// GeneralConfig holds startup and logging settings.
type GeneralConfig struct {
	StartScreen screen.ID `toml:"start_screen"`
	LogLevel    string    `toml:"log_level"` // debug, info, warn, error
	LogFile     string    `toml:"log_file"`
}

// StatsConfig controls the vitals screen.
type StatsConfig struct {
	RefreshInterval  Duration `toml:"refresh_interval"`
	SeriesLength     int      `toml:"series_length"`
	Seed             uint64   `toml:"seed"` // 0 = random
	HistoryRetention Duration `toml:"history_retention"`
}

// ChartConfig mirrors chart.Config minus the viewport size, which the
// stats screen derives from the terminal.
type ChartConfig struct {
	SmoothCurve           bool    `toml:"smooth_curve"`
	ShowAxis              bool    `toml:"show_axis"`
	AxisLabelsVisible     bool    `toml:"axis_labels_visible"`
	StrokeColor           string  `toml:"stroke_color"`
	ViewportWidthFraction float64 `toml:"viewport_width_fraction"`
	Height                int     `toml:"height"` // terminal rows per chart
}

// ThemeConfig selects a palette by name or from a TOML file.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// MetricConfig is one [[metrics]] entry.
type MetricConfig struct {
	Label string  `toml:"label"`
	Unit  string  `toml:"unit"`
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
}

// ChartOptions converts the chart section into renderer options on a
// default-sized viewport.
func (c ChartConfig) ChartOptions() chart.Config {
	opts := chart.DefaultConfig()
	opts.SmoothCurve = c.SmoothCurve
	opts.ShowAxis = c.ShowAxis
	opts.AxisLabelsVisible = c.AxisLabelsVisible
	opts.StrokeColor = c.StrokeColor
	opts.ViewportWidthFraction = c.ViewportWidthFraction
	return opts
}

// SampleMetrics converts the [[metrics]] list, falling back to the built-in
// profiles when the list is empty.
func (c *Config) SampleMetrics() []sample.Metric {
	if len(c.Metrics) == 0 {
		return sample.DefaultMetrics()
	}
	out := make([]sample.Metric, len(c.Metrics))
	for i, m := range c.Metrics {
		out[i] = sample.Metric{Label: m.Label, Unit: m.Unit, Min: m.Min, Max: m.Max}
	}
	return out
}

// SlogLevel maps log_level to a slog level; unknown names mean info.
func (g GeneralConfig) SlogLevel() slog.Level {
	switch strings.ToLower(g.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if err := c.General.StartScreen.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("general.start_screen: %w", err))
	}
	if c.Stats.RefreshInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("stats.refresh_interval must be positive"))
	}
	if c.Stats.HistoryRetention.Duration < 0 {
		errs = append(errs, fmt.Errorf("stats.history_retention must not be negative"))
	}
	if c.Stats.SeriesLength < 0 {
		errs = append(errs, fmt.Errorf("stats.series_length %d is negative", c.Stats.SeriesLength))
	}
	if err := c.Chart.ChartOptions().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("chart: %w", err))
	}
	if c.Chart.Height < 1 {
		errs = append(errs, fmt.Errorf("chart.height %d must be at least 1", c.Chart.Height))
	}
	for i, m := range c.SampleMetrics() {
		if err := m.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("metrics[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
