package cli

import (
	"strings"

	"github.com/Backland-Labs/linsync/internal/logger"
	"github.com/spf13/cobra"
)

// newGetCommand shows one issue in detail
func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <identifier>",
		Short: "Show an issue by identifier (e.g. ENG-123)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			logger.WithField("identifier", args[0]).Debug("Fetching issue")
			issue, err := client.GetIssue(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Print("%s: %s\n", issue.Identifier, issue.Title)
			if issue.State != nil {
				p.Print("State: %s\n", issue.State.Name)
			}
			p.Print("Priority: %d\n", issue.Priority)
			p.Print("URL: %s\n", issue.URL)
			if len(issue.Labels) > 0 {
				p.Print("Labels: %s\n", strings.Join(issue.Labels, ", "))
			}
			if issue.Description != "" {
				p.Print("\n%s\n", issue.Description)
			}
			return nil
		},
	}
}
