// Package terminal identifies the host terminal emulator from its
// environment and derives what the dashboard can draw on it: an inline
// image protocol for chart previews, a color profile and the window size.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies a terminal emulator or multiplexer.
type Terminal int

const (
	TermGeneric   Terminal = iota
	TermGhostty            // kitty graphics
	TermKitty              // kitty graphics
	TermWezTerm            // kitty graphics, sixel, iterm2 images
	TermITerm2             // iterm2 images
	TermAlacritty          // true color, no images
	TermVTE                // GNOME Terminal, Tilix
	TermVSCode
	TermTmux
	TermScreen
)

var terminalNames = [...]string{
	TermGeneric:   "generic",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
}

func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "generic"
}

// TrueColor reports whether the emulator renders 24-bit color natively.
func (t Terminal) TrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermVTE, TermVSCode:
		return true
	default:
		return false
	}
}

// Detect inspects TERM_PROGRAM, TERM and emulator specific variables.
// Multiplexers are only reported when nothing identifies the outer
// emulator.
func Detect() Terminal {
	switch strings.ToLower(os.Getenv("TERM_PROGRAM")) {
	case "ghostty":
		return TermGhostty
	case "kitty":
		return TermKitty
	case "wezterm":
		return TermWezTerm
	case "iterm.app":
		return TermITerm2
	case "vscode":
		return TermVSCode
	case "alacritty":
		return TermAlacritty
	case "tmux":
		return TermTmux
	}

	term := os.Getenv("TERM")
	switch {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return TermKitty
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case os.Getenv("ITERM_SESSION_ID") != "", os.Getenv("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case os.Getenv("VTE_VERSION") != "":
		return TermVTE
	case os.Getenv("TMUX") != "":
		return TermTmux
	case os.Getenv("STY") != "":
		return TermScreen
	}
	return TermGeneric
}

// IsSSH reports whether the session runs over SSH.
func IsSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
