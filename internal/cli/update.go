package cli

import (
	"fmt"

	"github.com/Backland-Labs/linsync/internal/linear"
	"github.com/spf13/cobra"
)

// newUpdateCommand changes the state, title, or description of an issue
func newUpdateCommand() *cobra.Command {
	var stateID string
	var title string
	var description string

	cmd := &cobra.Command{
		Use:   "update <issue_id>",
		Short: "Update an issue",
		Long: `Update an issue's workflow state, title, or description.

At least one of --state, --title, or --description must be given;
fields not named are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stateID == "" && title == "" && description == "" {
				return fmt.Errorf("at least one of --state, --title, or --description is required")
			}

			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			issue, err := client.UpdateIssue(cmd.Context(), args[0], linear.UpdateIssueParams{
				StateID:     stateID,
				Title:       title,
				Description: description,
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Print("Updated issue: %s\n", issue.Identifier)
			if issue.State != nil {
				p.Print("State: %s\n", issue.State.Name)
			}
			p.Print("URL: %s\n", issue.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&stateID, "state", "", "Move the issue to this workflow state ID")
	cmd.Flags().StringVar(&title, "title", "", "Replace the issue title")
	cmd.Flags().StringVar(&description, "description", "", "Replace the issue description")

	return cmd
}
