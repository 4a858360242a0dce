package cli

import (
	"github.com/spf13/cobra"
)

// newSearchCommand finds issues in a team by text query. With no
// query, every issue in the team is listed.
func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <team_id> [query]",
		Short: "Search issues in a team",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 1 {
				query = args[1]
			}

			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			issues, err := client.SearchIssues(cmd.Context(), args[0], query)
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			if len(issues) == 0 {
				p.Info("No issues found")
				return nil
			}

			p.Println("Issues:")
			for _, issue := range issues {
				if issue.State != nil {
					p.Print("  %s: %s (%s)\n", issue.Identifier, issue.Title, issue.State.Name)
				} else {
					p.Print("  %s: %s\n", issue.Identifier, issue.Title)
				}
			}
			return nil
		},
	}
}
