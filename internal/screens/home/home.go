package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/grader"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/screen"
	"github.com/bvarga/petralog/internal/screens/history"
	"github.com/bvarga/petralog/internal/screens/playground"
	"github.com/bvarga/petralog/internal/screens/quiz"
	"github.com/bvarga/petralog/internal/store"
	"github.com/bvarga/petralog/internal/symbolize"
	"github.com/bvarga/petralog/internal/ui/components"
	"github.com/bvarga/petralog/internal/ui/theme"
)

const banner = `
 ▄▄▄▄  ▄▄▄▄▄ ▄▄▄▄▄ ▄▄▄▄   ▄▄▄  ▄    ▄▄▄   ▄▄▄▄
 █   █ █       █   █   █ █   █ █   █   █ █
 █▄▄▄▀ █▄▄▄    █   █▄▄▄▀ █▄▄▄█ █   █   █ █  ▄▄▄
 █     █       █   █  █  █   █ █   █   █ █    █
 █     █▄▄▄▄   █   █   █ █   █ █▄▄▄ █▄█  ▀▄▄▄▀
`

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with injected dependencies.
func New(engine *logic.Engine, eventRepo store.EventRepo, g *grader.Grader, sym *symbolize.Symbolizer, gen *assignment.Generator) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAYGROUND", Action: func() tea.Cmd {
			return screen.Push(playground.New(engine, sym))
		}},
		{Label: "QUIZ", Action: func() tea.Cmd {
			return screen.Push(quiz.New(gen, g, eventRepo))
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return screen.Push(history.New(eventRepo))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render(strings.TrimLeft(banner, "\n"))
	subtitle := theme.Subtitle.Render("propositional logic for geologists")
	menu := theme.Card.Render(h.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", menu)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
