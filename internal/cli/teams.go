package cli

import (
	"github.com/Backland-Labs/linsync/internal/logger"
	"github.com/spf13/cobra"
)

// newTeamsCommand lists every team in the workspace
func newTeamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List all teams in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			logger.Debug("Fetching teams")
			teams, err := client.Teams(cmd.Context())
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Println("Teams:")
			for _, team := range teams {
				p.Print("  %s (%s) - Key: %s\n", team.Name, team.ID, team.Key)
			}
			return nil
		},
	}
}
