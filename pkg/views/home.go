package views

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

type menuItem struct {
	label  string
	target screen.ID
}

// Home is the landing menu. Each button pushes its screen.
type Home struct {
	d      Deps
	items  []menuItem
	cursor int
	prefix string
}

// NewHome returns the home menu.
func NewHome(d Deps) *Home {
	return &Home{
		d: d,
		items: []menuItem{
			{"Health stats", screen.Stats},
			{"Camera", screen.FpvStream},
			{"Messages", screen.Conversation},
			{"Day", screen.Day},
			{"Night", screen.Night},
		},
		prefix: d.Zones.NewPrefix(),
	}
}

func (h *Home) ID() screen.ID  { return screen.Home }
func (h *Home) Title() string  { return screen.Home.Title() }
func (h *Home) Enter() tea.Cmd { return nil }

// Cursor returns the highlighted button index.
func (h *Home) Cursor() int { return h.cursor }

// Update handles clicks on the menu buttons.
func (h *Home) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.MouseMsg)
	if !ok || m.Action != tea.MouseActionRelease || m.Button != tea.MouseButtonLeft {
		return nil
	}
	for i := range h.items {
		if z := h.d.Zones.Get(h.zoneID(i)); z != nil && z.InBounds(m) {
			h.cursor = i
			h.open(i)
			return nil
		}
	}
	return nil
}

// HandleKey moves the cursor and opens screens. Digits open the n-th
// button directly.
func (h *Home) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch k := msg.String(); k {
	case "up", "k":
		h.cursor = max(h.cursor-1, 0)
	case "down", "j", "tab":
		h.cursor = min(h.cursor+1, len(h.items)-1)
	case "enter", " ":
		h.open(h.cursor)
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(h.items) {
			h.cursor = n - 1
			h.open(n - 1)
		}
	}
	return nil
}

func (h *Home) open(i int) {
	if err := h.d.Nav.NavigateTo(h.items[i].target); err != nil {
		h.d.Logger.Error("home: navigate", "target", h.items[i].target, "err", err)
	}
}

func (h *Home) zoneID(i int) string {
	return fmt.Sprintf("%smenu-%d", h.prefix, i)
}

func (h *Home) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := h.d.Styles
	buttons := make([]string, len(h.items))
	for i, it := range h.items {
		st := s.Button
		if i == h.cursor {
			st = s.ButtonFocus
		}
		label := fmt.Sprintf("%d  %s", i+1, it.label)
		buttons[i] = h.d.Zones.Mark(h.zoneID(i), st.Width(24).Render(label))
	}
	menu := lipgloss.JoinVertical(lipgloss.Left, buttons...)
	hint := s.Dim.Render("↑/↓ move · enter open · 1-5 jump")
	body := lipgloss.JoinVertical(lipgloss.Center, menu, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
