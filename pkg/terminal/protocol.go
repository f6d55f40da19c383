package terminal

import (
	"strings"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/image"
)

// SelectProtocol picks the richest inline image protocol the emulator
// supports. Over SSH every graphics protocol falls back to halfblocks.
func SelectProtocol(t Terminal) image.Protocol {
	if IsSSH() {
		return image.Halfblocks
	}
	switch t {
	case TermGhostty, TermKitty, TermWezTerm:
		return image.Kitty
	case TermITerm2:
		return image.ITerm2
	default:
		return image.Halfblocks
	}
}

// ResolveProtocol honors an explicit protocol name and detects one for
// "auto" or an empty name.
func ResolveProtocol(name string) (image.Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return SelectProtocol(Detect()), nil
	}
	return image.ParseProtocol(name)
}
