package chart

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// ErrInvalidConfig is returned by Render when a configuration value is out
// of range. Nothing is clamped: the request is rejected before any
// computation.
var ErrInvalidConfig = errors.New("invalid chart config")

// DefaultStrokeColor is the accent green used for chart lines.
const DefaultStrokeColor = "#4CAF50"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config holds the recognized rendering options.
type Config struct {
	SmoothCurve       bool   // curved segments instead of straight ones
	ShowAxis          bool   // emit axis lines
	AxisLabelsVisible bool   // emit min/max tick labels (needs ShowAxis)
	StrokeColor       string // "#RRGGBB"

	// ViewportWidthFraction is the share of Width taken by the plot; the
	// remainder is reserved for the label. Must be in (0, 1].
	ViewportWidthFraction float64

	// Width and Height are the viewport size in caller units (dots, pixels).
	Width  float64
	Height float64
}

// DefaultConfig returns the default options on a 100x100 viewport.
func DefaultConfig() Config {
	return Config{
		SmoothCurve:           true,
		StrokeColor:           DefaultStrokeColor,
		ViewportWidthFraction: 0.8,
		Width:                 100,
		Height:                100,
	}
}

// Validate reports the first out-of-range value as an error wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	f := c.ViewportWidthFraction
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return fmt.Errorf("%w: viewport width fraction %v not in (0,1]", ErrInvalidConfig, f)
	}
	if !positiveFinite(c.Width) {
		return fmt.Errorf("%w: width %v", ErrInvalidConfig, c.Width)
	}
	if !positiveFinite(c.Height) {
		return fmt.Errorf("%w: height %v", ErrInvalidConfig, c.Height)
	}
	if !hexColorRegex.MatchString(c.StrokeColor) {
		return fmt.Errorf("%w: stroke color %q is not #RRGGBB", ErrInvalidConfig, c.StrokeColor)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
