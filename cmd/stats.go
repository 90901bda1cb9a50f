package cmd

import (
	"fmt"
	"sort"

	"github.com/bvarga/petralog/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize graded attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		attempts, err := st.EventRepo().ListAttempts(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		type bucket struct {
			attempts int
			correct  int
			score    int
			maxScore int
		}
		total := bucket{}
		byKind := make(map[string]*bucket)
		sessions := make(map[string]bool)

		for _, a := range attempts {
			total.attempts++
			total.score += a.Score
			total.maxScore += a.MaxScore
			if a.Correct {
				total.correct++
			}
			sessions[a.SessionID] = true

			b := byKind[a.Kind]
			if b == nil {
				b = &bucket{}
				byKind[a.Kind] = b
			}
			b.attempts++
			b.score += a.Score
			b.maxScore += a.MaxScore
			if a.Correct {
				b.correct++
			}
		}

		fmt.Printf("Attempts: %d across %d sessions\n", total.attempts, len(sessions))
		fmt.Printf("Correct:  %d (%.0f%%)\n", total.correct, 100*float64(total.correct)/float64(total.attempts))
		fmt.Printf("Score:    %d/%d\n\n", total.score, total.maxScore)

		kinds := make([]string, 0, len(byKind))
		for k := range byKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		fmt.Printf("%-12s %9s %9s %10s\n", "KIND", "ATTEMPTS", "CORRECT", "SCORE")
		for _, k := range kinds {
			b := byKind[k]
			fmt.Printf("%-12s %9d %9d %6d/%d\n", k, b.attempts, b.correct, b.score, b.maxScore)
		}
		return nil
	},
}
