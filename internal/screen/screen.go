package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bvarga/petralog/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PushMsg asks the app to push a new screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the app to pop the current screen off the stack.
type PopMsg struct{}

// Push wraps a screen constructor as a navigation command.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// Pop returns a navigation command that goes back one screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}
