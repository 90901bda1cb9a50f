package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
	"github.com/bvarga/petralog/internal/store"
	"github.com/bvarga/petralog/internal/symbolize"
	"github.com/spf13/cobra"
)

var symbolizeLang string

var symbolizeCmd = &cobra.Command{
	Use:   "symbolize <sentence>",
	Short: "Translate a sentence into a formula",
	Long: `Translates a natural-language sentence over the course's variable
meanings into propositional symbols. Uses the configured model when one
is available and falls back to offline pattern matching otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sentence := strings.Join(args, " ")

		lang := phrase.Lang(symbolizeLang)
		if lang != phrase.LangEN && lang != phrase.LangHU {
			return fmt.Errorf("unknown language %q (want en or hu)", symbolizeLang)
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
			fmt.Fprintln(os.Stderr, "LLM provider not configured, using offline patterns:", err)
			provider = nil
		}

		res, err := symbolize.New(engine, provider).Symbolize(ctx, sentence, lang)
		if err != nil {
			return err
		}

		fmt.Println(res.Formula)
		if res.Explanation != "" {
			fmt.Println(res.Explanation)
		}
		return nil
	},
}

func init() {
	symbolizeCmd.Flags().StringVar(&symbolizeLang, "lang", "en", "sentence language (en or hu)")
}
