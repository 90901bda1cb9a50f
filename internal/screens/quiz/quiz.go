package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/grader"
	"github.com/bvarga/petralog/internal/phrase"
	"github.com/bvarga/petralog/internal/screen"
	"github.com/bvarga/petralog/internal/store"
	"github.com/bvarga/petralog/internal/ui/components"
	"github.com/bvarga/petralog/internal/ui/layout"
	"github.com/bvarga/petralog/internal/ui/theme"
)

// setReadyMsg is sent when the question set has been generated and
// recorded.
type setReadyMsg struct {
	Set *assignment.Set
	Err error
}

// gradedMsg is sent when an answer has been graded and persisted.
type gradedMsg struct {
	Result grader.Result
	Err    error
}

type state int

const (
	stateSetup state = iota
	stateQuestion
	stateGrading
	stateFeedback
	stateSummary
)

// QuizScreen runs one assignment set end to end: identity form,
// questions, grading, and a score summary. Every graded answer is
// appended to the event log with the set ID as the session.
type QuizScreen struct {
	gen    *assignment.Generator
	grader *grader.Grader
	repo   store.EventRepo

	state      state
	nameInput  components.TextInput
	codeInput  components.TextInput
	setupFocus int
	lang       phrase.Lang

	set        *assignment.Set
	idx        int
	input      components.TextInput
	asked      time.Time
	lastResult grader.Result
	score      int
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen in its setup state.
func New(gen *assignment.Generator, g *grader.Grader, repo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		gen:       gen,
		grader:    g,
		repo:      repo,
		lang:      phrase.LangEN,
		nameInput: components.NewTextInput("Your name", 40),
		codeInput: components.NewTextInput("Neptun code", 10),
		input:     components.NewTextInput("Your answer", 120),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.nameInput.Init()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.state {
	case stateSetup:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+L", Description: "Language"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case stateFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case stateSummary:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setReadyMsg:
		if msg.Err != nil {
			q.state = stateSetup
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.set = msg.Set
		q.idx = 0
		q.score = 0
		q.state = stateQuestion
		q.asked = time.Now()
		return q, q.input.Init()

	case gradedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			q.state = stateQuestion
			return q, nil
		}
		q.lastResult = msg.Result
		q.score += msg.Result.Score
		q.state = stateFeedback
		return q, nil

	case tea.KeyMsg:
		switch q.state {
		case stateSetup:
			return q.updateSetup(msg)
		case stateQuestion:
			if msg.String() == "enter" {
				return q, q.submitAnswer()
			}
		case stateGrading:
			return q, nil
		case stateFeedback:
			q.advance()
			return q, nil
		case stateSummary:
			return q, nil
		}
	}

	if q.state == stateQuestion {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) updateSetup(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		q.setupFocus = (q.setupFocus + 1) % 2
		return q, nil
	case "ctrl+l":
		q.toggleLang()
		return q, nil
	case "enter":
		return q, q.startSet()
	}

	var cmd tea.Cmd
	if q.setupFocus == 0 {
		q.nameInput, cmd = q.nameInput.Update(msg)
	} else {
		q.codeInput, cmd = q.codeInput.Update(msg)
	}
	return q, cmd
}

func (q *QuizScreen) toggleLang() {
	if q.lang == phrase.LangEN {
		q.lang = phrase.LangHU
	} else {
		q.lang = phrase.LangEN
	}
}

func (q *QuizScreen) startSet() tea.Cmd {
	name := strings.TrimSpace(q.nameInput.Value())
	code := strings.TrimSpace(q.codeInput.Value())
	if name == "" || code == "" {
		q.errMsg = "name and code are required"
		return nil
	}
	q.errMsg = ""

	gen, repo, lang := q.gen, q.repo, q.lang
	return func() tea.Msg {
		set, err := gen.Generate(assignment.Params{
			Name:     name,
			Code:     code,
			Language: lang,
			Date:     time.Now(),
		})
		if err != nil {
			return setReadyMsg{Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = repo.AppendAssignment(ctx, store.AssignmentEventData{
			SetID:         set.ID,
			StudentName:   set.StudentName,
			StudentCode:   set.StudentCode,
			Language:      string(set.Language),
			Seed:          set.Seed,
			QuestionCount: len(set.Questions),
		})
		if err != nil {
			return setReadyMsg{Err: err}
		}
		return setReadyMsg{Set: set}
	}
}

func (q *QuizScreen) submitAnswer() tea.Cmd {
	answer := strings.TrimSpace(q.input.Value())
	if answer == "" {
		return nil
	}
	q.state = stateGrading
	q.errMsg = ""

	question := q.set.Questions[q.idx]
	g, repo := q.grader, q.repo
	setID := q.set.ID
	lang := string(q.set.Language)
	elapsed := time.Since(q.asked)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		res, err := g.Grade(ctx, question, answer)
		if err != nil {
			return gradedMsg{Err: err}
		}

		err = repo.AppendAttempt(ctx, store.AttemptEventData{
			SessionID:  setID,
			QuestionID: question.ID,
			Kind:       string(question.Kind),
			Prompt:     question.Prompt(phrase.Lang(lang)),
			Answer:     answer,
			Score:      res.Score,
			MaxScore:   res.MaxScore,
			Correct:    res.Correct,
			Feedback:   res.Feedback(lang),
			TimeMs:     int(elapsed.Milliseconds()),
		})
		if err != nil {
			return gradedMsg{Err: err}
		}
		return gradedMsg{Result: res}
	}
}

func (q *QuizScreen) advance() {
	q.idx++
	if q.idx >= len(q.set.Questions) {
		q.state = stateSummary
		return
	}
	q.input.Reset()
	q.asked = time.Now()
	q.state = stateQuestion
}

func (q *QuizScreen) View(width, height int) string {
	var content string
	switch q.state {
	case stateSetup:
		content = q.viewSetup()
	case stateQuestion, stateGrading:
		content = q.viewQuestion()
	case stateFeedback:
		content = q.viewFeedback()
	case stateSummary:
		content = q.viewSummary()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) viewSetup() string {
	marker := func(i int) string {
		if q.setupFocus == i {
			return "▸ "
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(marker(0) + q.nameInput.View() + "\n")
	b.WriteString(marker(1) + q.codeInput.View() + "\n\n")
	b.WriteString(theme.Hint.Render("language: " + strings.ToUpper(string(q.lang))))

	sections := []string{
		theme.Title.Render("Today's assignment"),
		theme.Subtitle.Render("questions are fixed for your name, code and today's date"),
		"",
		theme.Card.Render(b.String()),
	}
	if q.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(q.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (q *QuizScreen) viewQuestion() string {
	question := q.set.Questions[q.idx]

	progress := theme.Subtitle.Render(
		fmt.Sprintf("question %d of %d", q.idx+1, len(q.set.Questions)))
	prompt := theme.Body.Width(70).Render(question.Prompt(q.set.Language))

	var tail string
	switch {
	case q.state == stateGrading:
		tail = theme.Hint.Render("grading...")
	case q.errMsg != "":
		tail = theme.Incorrect.Render(q.errMsg)
	default:
		tail = q.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		progress, "", theme.Card.Render(prompt), "", tail)
}

func (q *QuizScreen) viewFeedback() string {
	verdict := theme.Incorrect.Render("Not quite.")
	if q.lastResult.Correct {
		verdict = theme.Correct.Render("Correct!")
	}

	scoreLine := theme.Body.Render(
		fmt.Sprintf("%d/%d points", q.lastResult.Score, q.lastResult.MaxScore))
	feedback := theme.Body.Width(70).Render(q.lastResult.Feedback(string(q.set.Language)))

	return lipgloss.JoinVertical(lipgloss.Center,
		verdict, scoreLine, "", theme.Card.Render(feedback))
}

func (q *QuizScreen) viewSummary() string {
	max := q.set.MaxScore()
	pct := 0
	if max > 0 {
		pct = 100 * q.score / max
	}

	verdictStyle := theme.Correct
	if pct < 50 {
		verdictStyle = theme.Incorrect
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Set complete"),
		"",
		verdictStyle.Render(fmt.Sprintf("%d/%d points (%d%%)", q.score, max, pct)),
		"",
		theme.Hint.Render("press Esc to return home"),
	)
}
