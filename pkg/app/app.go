package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/components"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/theme"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/views"
)

// AppTitle is shown in the top bar on every screen.
const AppTitle = "Smart Pet Collar"

const backZone = "app-back"

// Config holds the root model's settings.
type Config struct {
	Start           screen.ID
	RefreshInterval time.Duration
	Styles          theme.Styles
	Logger          *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	nav    *nav.Controller
	router *router
	views  map[screen.ID]views.View
	styles theme.Styles
	zones  *zone.Manager
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	interval      time.Duration
	width, height int
	ready         bool
}

// New creates the root model. build receives the navigation controller
// and returns the views; screens it leaves out render a placeholder.
func New(cfg Config, zones *zone.Manager, build func(*nav.Controller) map[screen.ID]views.View) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c, err := nav.New(cfg.Start, nav.WithLogger(logger))
	if err != nil {
		return Model{}, fmt.Errorf("app: %w", err)
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 2 * time.Second
	}
	if zones == nil {
		zones = zone.New()
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Styles.Theme.HelpKey))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Styles.Theme.HelpDesc))
	h.Styles.FullDesc = h.Styles.ShortDesc

	m := Model{
		nav:      c,
		router:   newRouter(c),
		views:    build(c),
		styles:   cfg.Styles,
		zones:    zones,
		keys:     defaultKeyMap(),
		help:     h,
		logger:   logger,
		interval: cfg.RefreshInterval,
	}
	if m.views == nil {
		m.views = map[screen.ID]views.View{}
	}
	return m, nil
}

// Nav returns the navigation controller.
func (m Model) Nav() *nav.Controller { return m.nav }

// Current returns the view for the top of the stack.
func (m Model) Current() views.View {
	return m.view(m.nav.Current())
}

func (m Model) view(id screen.ID) views.View {
	if v, ok := m.views[id]; ok {
		return v
	}
	return placeholder{id: id, style: m.styles.Dim}
}

// Ready reports whether the first window size has arrived.
func (m Model) Ready() bool { return m.ready }

// Init enters the start screen and arms the refresh tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Current().Enter(), TickCmd(m.interval))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	return m, tea.Batch(cmd, m.enterPending())
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	if ok, err := m.nav.Apply(msg); ok {
		if err != nil {
			m.logger.Error("navigate", "err", err)
		}
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return nil

	case TickEvent:
		return tea.Batch(m.Current().Update(views.RefreshMsg{At: msg.Time}), TickCmd(m.interval))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if z := m.zones.Get(backZone); z != nil && z.InBounds(msg) {
				m.nav.NavigateBack()
				return nil
			}
		}
		return m.Current().Update(msg)
	}
	return m.Current().Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.nav.NavigateBack()
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return m.Current().HandleKey(msg)
}

// enterPending runs Enter on each screen the controller moved to while
// handling the last message.
func (m Model) enterPending() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.router.drain() {
		m.logger.Debug("screen entered", "screen", id, "depth", m.nav.Depth())
		cmds = append(cmds, m.view(id).Enter())
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	top := m.topBar()
	foot := m.help.View(m.keys)
	bodyH := m.height - lipgloss.Height(top) - lipgloss.Height(foot)
	body := m.Current().View(m.width, max(bodyH, 0))

	parts := []string{top}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, foot)
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// topBar renders "← Smart Pet Collar · Title" with the stack breadcrumb on
// the right.
func (m Model) topBar() string {
	s := m.styles
	left := s.TopBar.Render(AppTitle)
	if cur := m.nav.Current(); cur != screen.Home {
		left += s.Breadcrumb.Render(" · ") + s.TopBar.Render(cur.Title())
	}
	if m.nav.CanGoBack() {
		left = m.zones.Mark(backZone, s.BackArrow.Render("←")) + " " + left
	}

	stack := m.nav.Stack()
	names := make([]string, len(stack))
	for i, id := range stack {
		names[i] = id.String()
	}
	crumb := s.Breadcrumb.Render(strings.Join(names, " › "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(crumb)
	if gap < 2 {
		return components.Fit(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + crumb
}
