package cli

import (
	"github.com/Backland-Labs/linsync/internal/planfile"
	"github.com/spf13/cobra"
)

// newValidateCommand checks a plan file locally, without touching Linear.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plan-file>",
		Short: "Check a plan file without creating any issues",
		Long: `Check that a plan file parses and passes validation without
creating anything. Useful as a dry run before sync.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planfile.Load(args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.Success("Plan is valid: %d issue(s) for team %s", len(plan.Issues), plan.Team)
			for _, item := range plan.Issues {
				p.Detail("%s", item.Title)
			}
			return nil
		},
	}
}
