package cli

import (
	"github.com/spf13/cobra"
)

// newStatesCommand lists the workflow states configured for a team.
// State IDs from this listing feed `create` plan files and `update
// --state`.
func newStatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "states <team_id>",
		Short: "List the workflow states of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			states, err := client.WorkflowStates(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Println("Workflow states:")
			for _, state := range states {
				p.Print("  %s [%s] (%s)\n", state.Name, state.Type, state.ID)
			}
			return nil
		},
	}
}
