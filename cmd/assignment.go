package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/grader"
	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
	"github.com/bvarga/petralog/internal/store"
	"github.com/spf13/cobra"
)

var (
	asgName    string
	asgCode    string
	asgLang    string
	asgCount   int
	asgDate    string
	asgAnswers string
)

var assignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Generate and grade per-student question sets",
	Long: `Question sets are a deterministic function of the student's name,
neptun code and the date, so a sheet handed out on Monday can be graded
on Friday without storing the questions anywhere.`,
}

var assignmentGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a question sheet for one student",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := buildSet()
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		err = st.EventRepo().AppendAssignment(cmd.Context(), store.AssignmentEventData{
			SetID:         set.ID,
			StudentName:   set.StudentName,
			StudentCode:   set.StudentCode,
			Language:      string(set.Language),
			Seed:          set.Seed,
			QuestionCount: len(set.Questions),
		})
		if err != nil {
			return fmt.Errorf("record assignment: %w", err)
		}

		fmt.Printf("Assignment for %s (%s), %s\n", set.StudentName, set.StudentCode, set.Date)
		fmt.Printf("Set %s, %d points total\n\n", set.ID, set.MaxScore())
		for _, q := range set.Questions {
			fmt.Printf("%s [%d pt] %s\n", q.ID, q.MaxScore, q.Prompt(set.Language))
		}
		fmt.Println("\nAnswer file format: one \"qNN: answer\" line per question.")
		return nil
	},
}

var assignmentGradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade an answer file against the regenerated set",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := buildSet()
		if err != nil {
			return err
		}
		answers, err := readAnswers(asgAnswers)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		engine := logic.Default()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured, free-text grading uses the offline heuristic:", err)
			provider = nil
		}
		g := grader.New(engine, provider)

		total, max := 0, set.MaxScore()
		for _, q := range set.Questions {
			answer, ok := answers[q.ID]
			if !ok {
				fmt.Printf("%s  0/%d  no answer\n", q.ID, q.MaxScore)
				continue
			}

			start := time.Now()
			res, err := g.Grade(ctx, q, answer)
			if err != nil {
				return fmt.Errorf("grade %s: %w", q.ID, err)
			}
			total += res.Score

			err = st.EventRepo().AppendAttempt(ctx, store.AttemptEventData{
				SessionID:  set.ID,
				QuestionID: q.ID,
				Kind:       string(q.Kind),
				Prompt:     q.Prompt(set.Language),
				Answer:     answer,
				Score:      res.Score,
				MaxScore:   res.MaxScore,
				Correct:    res.Correct,
				Feedback:   res.Feedback(string(set.Language)),
				TimeMs:     int(time.Since(start).Milliseconds()),
			})
			if err != nil {
				return fmt.Errorf("record attempt: %w", err)
			}

			fmt.Printf("%s  %d/%d  %s\n", q.ID, res.Score, res.MaxScore, res.Feedback(string(set.Language)))
		}

		fmt.Printf("\nTotal: %d/%d\n", total, max)
		return nil
	},
}

func buildSet() (*assignment.Set, error) {
	lang := phrase.Lang(asgLang)
	if lang != phrase.LangEN && lang != phrase.LangHU {
		return nil, fmt.Errorf("unknown language %q (want en or hu)", asgLang)
	}

	date := time.Now()
	if asgDate != "" {
		var err error
		date, err = time.Parse("2006-01-02", asgDate)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", asgDate, err)
		}
	}

	return assignment.NewGenerator(logic.Default()).Generate(assignment.Params{
		Name:     asgName,
		Code:     asgCode,
		Language: lang,
		Count:    asgCount,
		Date:     date,
	})
}

// readAnswers parses "qNN: answer" lines. Blank lines and # comments are
// skipped.
func readAnswers(path string) (map[string]string, error) {
	if path == "" {
		return nil, fmt.Errorf("--answers is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()

	answers := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, answer, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("answers line %d: want \"qNN: answer\", got %q", lineNo, line)
		}
		answers[strings.TrimSpace(id)] = strings.TrimSpace(answer)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return answers, nil
}

func init() {
	for _, c := range []*cobra.Command{assignmentGenerateCmd, assignmentGradeCmd} {
		c.Flags().StringVar(&asgName, "name", "", "student name (required)")
		c.Flags().StringVar(&asgCode, "code", "", "student neptun code (required)")
		c.Flags().StringVar(&asgLang, "lang", "en", "question language (en or hu)")
		c.Flags().IntVar(&asgCount, "count", 0, "question count (default 5)")
		c.Flags().StringVar(&asgDate, "date", "", "assignment date, YYYY-MM-DD (default today)")
	}
	assignmentGradeCmd.Flags().StringVar(&asgAnswers, "answers", "", "path to the answer file (required)")

	assignmentCmd.AddCommand(assignmentGenerateCmd)
	assignmentCmd.AddCommand(assignmentGradeCmd)
}
