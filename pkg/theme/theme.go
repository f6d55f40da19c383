// Package theme holds the color palettes for the collar dashboard and the
// lipgloss styles derived from them.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete palette. All colors are "#RRGGBB".
type Theme struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Chrome
	Border      string // unfocused borders
	BorderFocus string // focused borders, selected buttons
	Title       string // top bar title

	// Message cards
	CardSurface  string // collapsed card body
	CardExpanded string // expanded card body

	// Charts
	ChartLine string // default stroke when the config leaves it unset
	ChartAxis string

	// Vitals status
	StatusOK    string
	StatusWarn  string
	StatusError string

	// Help
	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// DefaultName is the palette used when none is configured.
const DefaultName = "night"

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	t, ok := Lookup(name)
	if !ok {
		t, _ = Lookup(DefaultName)
	}
	return t
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a theme under its lowercase name. The theme
// must pass validation.
func Register(t Theme) error {
	if err := validate(t); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
	return nil
}
