package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bvarga/petralog/internal/screen"
	"github.com/bvarga/petralog/internal/store"
	"github.com/bvarga/petralog/internal/ui/layout"
	"github.com/bvarga/petralog/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []sessionSummary
	Err      error
}

// sessionSummary aggregates the attempts of one quiz set.
type sessionSummary struct {
	SessionID string
	Date      string
	Attempts  []store.Attempt
	Score     int
	MaxScore  int
	Correct   int
}

// HistoryScreen displays past quiz sets and their graded answers.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []sessionSummary
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.eventRepo.ListAttempts(context.Background(), store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: summarize(attempts)}
	}
}

// summarize groups attempts by session, newest set first.
func summarize(attempts []store.Attempt) []sessionSummary {
	index := make(map[string]int)
	var sessions []sessionSummary

	for _, a := range attempts {
		i, ok := index[a.SessionID]
		if !ok {
			i = len(sessions)
			index[a.SessionID] = i
			sessions = append(sessions, sessionSummary{
				SessionID: a.SessionID,
				Date:      a.Timestamp.Format("Jan 02, 2006"),
			})
		}
		s := &sessions[i]
		s.Attempts = append(s.Attempts, a)
		s.Score += a.Score
		s.MaxScore += a.MaxScore
		if a.Correct {
			s.Correct++
		}
	}

	// Attempts arrive in sequence order; reverse so recent sets lead.
	for l, r := 0, len(sessions)-1; l < r; l, r = l+1, r-1 {
		sessions[l], sessions[r] = sessions[r], sessions[l]
	}
	return sessions
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quiz sets yet. Take one from the home menu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d questions  %d correct  %d/%d points",
			prefix, sess.Date, len(sess.Attempts), sess.Correct, sess.Score, sess.MaxScore)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, a := range sess.Attempts {
				mark := theme.Incorrect.Render("✗")
				if a.Correct {
					mark = theme.Correct.Render("✓")
				}
				detail := fmt.Sprintf("    %s %s  %d/%d  %s",
					mark, a.QuestionID, a.Score, a.MaxScore, clip(a.Answer, 40))
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
