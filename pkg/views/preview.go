package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/conversation"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// Preview shows a single card naming its page. Tab opens the sibling page.
type Preview struct {
	d       Deps
	id      screen.ID
	sibling screen.ID
	msg     conversation.Message
}

// NewPreview returns the preview for id.
func NewPreview(d Deps, id, sibling screen.ID) *Preview {
	return &Preview{d: d, id: id, sibling: sibling, msg: conversation.PagePreview(id.Title())}
}

func (p *Preview) ID() screen.ID            { return p.id }
func (p *Preview) Title() string            { return p.id.Title() }
func (p *Preview) Enter() tea.Cmd           { return nil }
func (p *Preview) Update(_ tea.Msg) tea.Cmd { return nil }

func (p *Preview) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "tab" {
		return nav.To(p.sibling)
	}
	return nil
}

func (p *Preview) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cardW := min(max(width-4, 4), 48)
	card := renderCard(p.d.Styles, p.msg, cardW, cardState{})
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
