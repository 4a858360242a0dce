package cli

import (
	"github.com/Backland-Labs/linsync/internal/linear"
	"github.com/spf13/cobra"
)

// newCreateCommand creates a single issue in a team
func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <team_id> <title>",
		Short: "Create an issue",
		Long: `Create an issue with the given title in a team.

Use quotes for multi-word titles:
  linsync create <team_id> "Fix login crash"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			issue, err := client.CreateIssue(cmd.Context(), linear.CreateIssueParams{
				TeamID:      args[0],
				Title:       args[1],
				Description: "Created via API",
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Print("Created issue: %s\n", issue.Identifier)
			p.Print("URL: %s\n", issue.URL)
			return nil
		},
	}
}
