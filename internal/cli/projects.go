package cli

import (
	"github.com/spf13/cobra"
)

// newProjectsCommand lists the projects that belong to a team
func newProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects <team_id>",
		Short: "List the projects of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			projects, err := client.Projects(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Println("Projects:")
			for _, project := range projects {
				p.Print("  %s (%s)\n", project.Name, project.ID)
			}
			return nil
		},
	}
}
