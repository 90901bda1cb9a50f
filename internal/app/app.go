package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/grader"
	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/screen"
	"github.com/bvarga/petralog/internal/screens/home"
	"github.com/bvarga/petralog/internal/store"
	"github.com/bvarga/petralog/internal/symbolize"
	"github.com/bvarga/petralog/internal/ui/layout"
)

// Options carries the dependencies the screens need. Provider may be
// nil; grading and symbolization then run on the offline paths.
type Options struct {
	Engine     *logic.Engine
	EventRepo  store.EventRepo
	Provider   llm.Provider
	Grader     *grader.Grader
	Symbolizer *symbolize.Symbolizer
	Generator  *assignment.Generator
}

// AppModel is the root Bubble Tea model. It owns the screen stack;
// screens navigate by emitting screen.PushMsg and screen.PopMsg.
type AppModel struct {
	stack  []screen.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		stack: []screen.Screen{
			home.New(opts.Engine, opts.EventRepo, opts.Grader, opts.Symbolizer, opts.Generator),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active().Init()
}

func (m AppModel) active() screen.Screen {
	return m.stack[len(m.stack)-1]
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.PushMsg:
		m.stack = append(m.stack, msg.Screen)
		return m, msg.Screen.Init()

	case screen.PopMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
			}
			return m, nil
		}
	}

	updated, cmd := m.active().Update(msg)
	m.stack[len(m.stack)-1] = updated
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.active()
	header := layout.RenderHeader(active.Title(), m.width)

	hints := defaultKeyHints(len(m.stack) > 1)
	if p, ok := active.(screen.KeyHintProvider); ok {
		if custom := p.KeyHints(); custom != nil {
			hints = custom
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func defaultKeyHints(nested bool) []layout.KeyHint {
	if nested {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
