package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bvarga/petralog/internal/store"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded events",
	Long: `Deletes every attempt, assignment and LLM request event and restarts
the event sequence. This cannot be undone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if !resetForce {
			fmt.Printf("This deletes all events in %s. Type 'yes' to continue: ", dbPath)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.EventRepo().PurgeAll(cmd.Context()); err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		fmt.Println("All events deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip the confirmation prompt")
}
