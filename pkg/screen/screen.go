// Package screen defines the closed set of screens the collar dashboard can
// display. Every entry point that accepts a screen validates it here, so
// adding or removing a screen is a change to the table below and nothing else.
package screen

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrInvalidScreenIdentifier is returned when a screen outside the closed
// set is requested.
var ErrInvalidScreenIdentifier = errors.New("invalid screen identifier")

// ID identifies one screen. The zero value is not a valid screen.
type ID int

const (
	invalid ID = iota
	Home
	Stats
	FpvStream
	Conversation
	Day
	Night
)

// screenInfo is the single table describing every screen.
var screenInfo = map[ID]struct {
	name  string
	title string
}{
	Home:         {name: "home", title: "Smart Pet Collar"},
	Stats:        {name: "stats", title: "Health Stats"},
	FpvStream:    {name: "fpvstream", title: "Camera"},
	Conversation: {name: "conversation", title: "Messages"},
	Day:          {name: "day", title: "Day"},
	Night:        {name: "night", title: "Night"},
}

// All returns every screen in screenInfo, in declaration order.
func All() []ID {
	return slices.Sorted(maps.Keys(screenInfo))
}

// Valid reports whether id is a member of the closed set.
func (id ID) Valid() bool {
	_, ok := screenInfo[id]
	return ok
}

// String returns the lowercase config name, e.g. "fpvstream".
func (id ID) String() string {
	if info, ok := screenInfo[id]; ok {
		return info.name
	}
	return fmt.Sprintf("screen(%d)", int(id))
}

// Title returns the human-readable title shown in the top bar.
func (id ID) Title() string {
	if info, ok := screenInfo[id]; ok {
		return info.title
	}
	return ""
}

// Validate returns an error wrapping ErrInvalidScreenIdentifier when id is
// not a member of the closed set.
func (id ID) Validate() error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidScreenIdentifier, int(id))
	}
	return nil
}

// Parse resolves a case-insensitive screen name such as "Stats" or
// "fpvstream". Surrounding whitespace is ignored.
func Parse(name string) (ID, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for id, info := range screenInfo {
		if info.name == want {
			return id, nil
		}
	}
	return invalid, fmt.Errorf("%w: %q", ErrInvalidScreenIdentifier, name)
}

// MarshalText implements encoding.TextMarshaler so IDs round-trip through
// TOML config files.
func (id ID) MarshalText() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
