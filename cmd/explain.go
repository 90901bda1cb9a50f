package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bvarga/petralog/internal/llm"
	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/phrase"
	"github.com/bvarga/petralog/internal/store"
	"github.com/spf13/cobra"
)

var (
	explainLang string
	explainLLM  bool
)

var explainCmd = &cobra.Command{
	Use:   "explain <formula>",
	Short: "Read a formula back as a sentence",
	Long: `Renders the formula as an English or Hungarian sentence using the
course's variable meanings. With --llm, also asks the configured model
for a short account of what the formula claims.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := logic.Default()

		prog, err := engine.Compile(args[0])
		if err != nil {
			return err
		}
		tree, err := logic.ASTFromProgram(prog)
		if err != nil {
			return fmt.Errorf("formula %q: %w", args[0], err)
		}

		lang := phrase.Lang(explainLang)
		if lang != phrase.LangEN && lang != phrase.LangHU {
			return fmt.Errorf("unknown language %q (want en or hu)", explainLang)
		}

		fmt.Println(tree.Symbols())
		fmt.Println(phrase.Formula(tree, phrase.DefaultVars(lang), lang))

		if !explainLLM {
			return nil
		}
		return explainWithLLM(cmd, tree, lang)
	},
}

func init() {
	explainCmd.Flags().StringVar(&explainLang, "lang", "en", "sentence language (en or hu)")
	explainCmd.Flags().BoolVar(&explainLLM, "llm", false, "ask the configured model for a deeper explanation")
}

func explainWithLLM(cmd *cobra.Command, tree *logic.Node, lang phrase.Lang) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := llm.WithPurpose(cmd.Context(), llm.PurposeExplain)
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		return nil
	}

	language := "English"
	if lang == phrase.LangHU {
		language = "Hungarian"
	}
	resp, err := provider.Generate(ctx, llm.Request{
		System: "You are a logic teaching assistant for a geology course. " +
			"Explain what a propositional formula claims in plain " + language + ", in at most three sentences.",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Formula: %s\nReading: %s",
				tree.Symbols(), phrase.Formula(tree, phrase.DefaultVars(lang), lang))},
		},
		MaxTokens: 400,
	})
	if err != nil {
		return fmt.Errorf("generate explanation: %w", err)
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	fmt.Println()
	fmt.Println(text)
	return nil
}
