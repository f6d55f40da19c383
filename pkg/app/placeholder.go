package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// placeholder stands in for a screen that has no registered view.
type placeholder struct {
	id    screen.ID
	style lipgloss.Style
}

func (p placeholder) ID() screen.ID                  { return p.id }
func (p placeholder) Title() string                  { return p.id.Title() }
func (p placeholder) Enter() tea.Cmd                 { return nil }
func (p placeholder) Update(_ tea.Msg) tea.Cmd       { return nil }
func (p placeholder) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

func (p placeholder) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := p.style.Render(p.id.Title() + " is not available yet")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
