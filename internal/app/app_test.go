package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bvarga/petralog/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func testModel() AppModel {
	return AppModel{stack: []screen.Screen{&stubScreen{title: "home"}}}
}

func TestPushMsg(t *testing.T) {
	m := testModel()
	s2 := &stubScreen{title: "second"}

	updated, _ := m.Update(screen.PushMsg{Screen: s2})
	m = updated.(AppModel)

	if len(m.stack) != 2 {
		t.Fatalf("expected depth 2, got %d", len(m.stack))
	}
	if m.active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", m.active().Title())
	}
}

func TestPopMsg(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(screen.PushMsg{Screen: &stubScreen{title: "second"}})
	m = updated.(AppModel)

	updated, _ = m.Update(screen.PopMsg{})
	m = updated.(AppModel)

	if len(m.stack) != 1 {
		t.Fatalf("expected depth 1, got %d", len(m.stack))
	}
	if m.active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", m.active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(screen.PopMsg{})
	m = updated.(AppModel)

	if len(m.stack) != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", len(m.stack))
	}
}

func TestEscPopsNestedScreen(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(screen.PushMsg{Screen: &stubScreen{title: "second"}})
	m = updated.(AppModel)

	updated, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)

	if len(m.stack) != 1 {
		t.Errorf("expected esc to pop, depth = %d", len(m.stack))
	}
}
