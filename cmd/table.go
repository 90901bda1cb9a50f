package cmd

import (
	"fmt"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print the truth table of a formula",
	Args:  cobra.ExactArgs(1),
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

		tbl, err := engine.TruthTable(prog)
		if err != nil {
			return err
		}

		fmt.Println(tree.Symbols())
		fmt.Println()
		fmt.Print(tbl.String())
		return nil
	},
}
