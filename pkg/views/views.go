// Package views implements the collar screens. Each view renders its body
// only; the root model owns the top bar, the help line and the navigation
// stack. Views that move between screens hold the navigation controller.
package views

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/conversation"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/image"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/sample"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/theme"
)

// View is one screen's body.
type View interface {
	ID() screen.ID
	Title() string

	// Enter runs each time the view becomes current.
	Enter() tea.Cmd

	Update(msg tea.Msg) tea.Cmd
	HandleKey(msg tea.KeyMsg) tea.Cmd

	// View renders exactly into width x height cells.
	View(width, height int) string
}

// RefreshMsg is forwarded to the current view on every refresh tick.
type RefreshMsg struct {
	At time.Time
}

// Deps are shared by every view.
type Deps struct {
	Nav     *nav.Controller
	Styles  theme.Styles
	Zones   *zone.Manager
	Profile termenv.Profile
	Logger  *slog.Logger
}

// Options carry the screen content.
type Options struct {
	Feed         *sample.Feed
	DemoFeed     *sample.Feed // three-chart demo column on the stats screen
	Chart        chart.Config
	ChartRows    int
	SeriesLength int
	Conversation conversation.Conversation
	Camera       *image.Renderer
}

// New builds one view per screen.
func New(d Deps, o Options) map[screen.ID]View {
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Zones == nil {
		d.Zones = zone.New()
	}
	if o.Camera == nil {
		o.Camera = image.NewRenderer(image.Halfblocks, d.Logger)
	}
	return map[screen.ID]View{
		screen.Home:         NewHome(d),
		screen.Stats:        NewStats(d, o),
		screen.FpvStream:    NewCamera(d, o.Camera),
		screen.Conversation: NewMessages(d, conversation.NewThread(o.Conversation)),
		screen.Day:          NewPreview(d, screen.Day, screen.Night),
		screen.Night:        NewPreview(d, screen.Night, screen.Day),
	}
}

// fill pads or clips s to exactly height lines.
func fill(s string, height int) string {
	if height <= 0 {
		return ""
	}
	var lines []string
	if s != "" {
		lines = strings.Split(s, "\n")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}
