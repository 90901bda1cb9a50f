package cmd

import (
	"fmt"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <formula> [<formula>]",
	Short: "Validate a formula or test two formulas for equivalence",
	Long: `With one formula: parse it and print the canonical form.
With two formulas: decide logical equivalence by truth-table sweep and
print a separating assignment if they differ.

ASCII shorthand is accepted: , for ¬, backtick for ∧, ~ for ∨,
-> for → and <-> for ↔.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := logic.Default()

		a, err := engine.Compile(args[0])
		if err != nil {
			return err
		}
		treeA, err := logic.ASTFromProgram(a)
		if err != nil {
			return fmt.Errorf("formula %q: %w", args[0], err)
		}

		if len(args) == 1 {
			fmt.Println(treeA.Symbols())
			return nil
		}

		b, err := engine.Compile(args[1])
		if err != nil {
			return err
		}
		treeB, err := logic.ASTFromProgram(b)
		if err != nil {
			return fmt.Errorf("formula %q: %w", args[1], err)
		}

		vars := mergeVars(a.Vars(), b.Vars())
		equal, witness, err := engine.Equivalent(a, b, vars)
		if err != nil {
			return err
		}

		fmt.Printf("A: %s\n", treeA.Symbols())
		fmt.Printf("B: %s\n", treeB.Symbols())
		if equal {
			fmt.Println("Equivalent.")
			return nil
		}
		fmt.Printf("Not equivalent: the formulas differ when %s.\n", logic.FormatEnv(witness))
		return nil
	},
}

func mergeVars(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
