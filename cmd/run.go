package cmd

import (
	"fmt"
	"os"

	"github.com/bvarga/petralog/internal/app"
	"github.com/bvarga/petralog/internal/assignment"
	"github.com/bvarga/petralog/internal/grader"
	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/store"
	"github.com/bvarga/petralog/internal/symbolize"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine := logic.Default()
	eventRepo := st.EventRepo()

	opts := app.Options{
		Engine:    engine,
		EventRepo: eventRepo,
		Generator: assignment.NewGenerator(engine),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Free-text grading and symbolization fall back to offline heuristics.")
	} else {
		opts.Provider = provider
	}

	opts.Grader = grader.New(engine, opts.Provider)
	opts.Symbolizer = symbolize.New(engine, opts.Provider)

	return app.Run(opts)
}
