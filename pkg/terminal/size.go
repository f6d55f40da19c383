package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Size is a terminal window in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize queries stdout, then stderr, and finally COLUMNS/LINES with an
// 80x24 default.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if c, r, err := term.GetSize(f.Fd()); err == nil && c > 0 && r > 0 {
			return Size{Cols: c, Rows: r}
		}
	}
	return sizeFromEnv()
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin and MSYS ptys.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorProfile returns the environment's color profile, promoted to
// true color when the emulator is known to support it.
func ColorProfile(t Terminal) termenv.Profile {
	p := termenv.EnvColorProfile()
	if p == termenv.Ascii {
		return p
	}
	if t.TrueColor() {
		return termenv.TrueColor
	}
	return p
}
