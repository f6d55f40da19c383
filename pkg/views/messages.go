package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/conversation"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// Messages is the scrollable message list. Enter toggles the selected card
// between one line and its full text.
type Messages struct {
	d      Deps
	thread *conversation.Thread
	vp     viewport.Model
	dirty  bool
}

// NewMessages returns the message list over t.
func NewMessages(d Deps, t *conversation.Thread) *Messages {
	v := &Messages{d: d, thread: t, vp: viewport.New(0, 0), dirty: true}
	t.Subscribe(func(conversation.ThreadState) { v.dirty = true })
	return v
}

func (v *Messages) ID() screen.ID  { return screen.Conversation }
func (v *Messages) Title() string  { return screen.Conversation.Title() }
func (v *Messages) Enter() tea.Cmd { return nil }

// Thread returns the view model.
func (v *Messages) Thread() *conversation.Thread { return v.thread }

// Update forwards mouse wheel scrolling to the viewport.
func (v *Messages) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.MouseMsg); ok {
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return cmd
	}
	return nil
}

func (v *Messages) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		v.thread.Select(-1)
	case "down", "j":
		v.thread.Select(1)
	case "enter", " ":
		v.thread.Toggle(v.thread.Selected())
	case "pgup":
		v.vp.HalfPageUp()
	case "pgdown":
		v.vp.HalfPageDown()
	}
	return nil
}

func (v *Messages) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	msgs := v.thread.Messages()
	if len(msgs) == 0 {
		return fill(v.d.Styles.Dim.Render("No messages."), height)
	}

	cardW := max(width-2, 4)
	v.thread.SetWidth(cardW - 2)
	if v.dirty || v.vp.Width != width || v.vp.Height != height {
		v.vp.Width, v.vp.Height = width, height
		v.rebuild(cardW)
	}
	return fill(v.vp.View(), height)
}

// rebuild lays out every card and scrolls so the selected one is visible.
func (v *Messages) rebuild(cardW int) {
	sel := v.thread.Selected()
	cards := make([]string, 0, len(v.thread.Messages()))
	selTop, selBottom := 0, 0
	line := 0
	for i, m := range v.thread.Messages() {
		c := renderCard(v.d.Styles, m, cardW, cardState{
			focused:  i == sel,
			expanded: v.thread.Expanded(i),
		})
		h := lipgloss.Height(c)
		if i == sel {
			selTop, selBottom = line, line+h
		}
		cards = append(cards, c)
		line += h + 1
	}
	v.vp.SetContent(" " + strings.ReplaceAll(strings.Join(cards, "\n\n"), "\n", "\n "))

	switch {
	case selTop < v.vp.YOffset:
		v.vp.SetYOffset(selTop)
	case selBottom > v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(selBottom - v.vp.Height)
	}
	v.dirty = false
}
