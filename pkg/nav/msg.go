package nav

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// NavigateToMsg asks the root model to push Screen.
type NavigateToMsg struct {
	Screen screen.ID
}

// NavigateBackMsg asks the root model to pop the current screen.
type NavigateBackMsg struct{}

// To returns a command that requests a push of id.
func To(id screen.ID) tea.Cmd {
	return func() tea.Msg { return NavigateToMsg{Screen: id} }
}

// Back returns a command that requests a pop.
func Back() tea.Cmd {
	return func() tea.Msg { return NavigateBackMsg{} }
}

// Apply feeds a navigation message into c. It returns false for messages
// that are not navigation requests.
func (c *Controller) Apply(msg tea.Msg) (bool, error) {
	switch msg := msg.(type) {
	case NavigateToMsg:
		return true, c.NavigateTo(msg.Screen)
	case NavigateBackMsg:
		c.NavigateBack()
		return true, nil
	}
	return false, nil
}
