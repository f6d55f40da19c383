// Package components holds the terminal drawing primitives shared by the
// collar screens: ANSI-aware text fitting and a braille canvas that paints
// rendered charts.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the width of s in terminal cells, ignoring ANSI escape
// sequences and counting wide runes as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Fit truncates s to width cells with a trailing ellipsis, then pads it
// with spaces so the result is exactly width cells wide.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return PadRight(s, width)
}

// PadRight pads s with trailing spaces up to width cells.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter centers s within width cells. An odd remainder goes right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Wrap word-wraps s at width cells and returns the lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
