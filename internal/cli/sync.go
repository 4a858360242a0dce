package cli

import (
	"fmt"
	"strings"

	"github.com/Backland-Labs/linsync/internal/linear"
	"github.com/Backland-Labs/linsync/internal/logger"
	"github.com/Backland-Labs/linsync/internal/planfile"
	"github.com/spf13/cobra"
)

// newSyncCommand creates every issue described in a YAML plan file,
// in file order, stopping at the first failure.
func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <plan-file>",
		Short: "Create the issues described in a YAML plan file",
		Long: `Create the issues described in a YAML plan file, in order.

The plan file names a team and a list of issues:

  team: <team_id>
  issues:
    - title: Fix login crash
      description: Crash when the session cookie is stale
      priority: 1
    - title: Add dark mode

Issues are created one at a time; the sync stops at the first failure,
so a partially applied plan can be trimmed and rerun.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planfile.Load(args[0])
			if err != nil {
				return err
			}

			client, err := clientFromEnv()
			if err != nil {
				return err
			}

			logger.WithFields(map[string]interface{}{
				"plan":   args[0],
				"issues": len(plan.Issues),
				"team":   plan.Team,
			}).Debug("plan loaded")

			p := newPrinter(cmd)
			p.Step("Creating %d issue(s) for team %s", len(plan.Issues), plan.Team)

			for i, item := range plan.Issues {
				timed := logger.GetLogger().Timed("create issue")
				issue, err := client.CreateIssue(cmd.Context(), linear.CreateIssueParams{
					TeamID:      plan.Team,
					Title:       item.Title,
					Description: item.Description,
					Priority:    item.Priority,
					ProjectID:   item.Project,
					StateID:     item.State,
					Labels:      item.Labels,
				})
				timed.DoneWithError(err)
				if err != nil {
					p.Error("Failed to create issue: %s", item.Title)
					return fmt.Errorf("issue %d (%s): %w", i+1, item.Title, err)
				}

				p.Success("Created issue: %s", issue.Identifier)
				if len(item.Labels) > 0 {
					logger.Warnf("Labels not sent to Linear, skipped: %s", strings.Join(item.Labels, ", "))
					p.Warning("labels not yet supported, skipped: %s", strings.Join(item.Labels, ", "))
				}
			}

			logger.Infof("Plan applied: created %d issue(s) for team %s", len(plan.Issues), plan.Team)
			return nil
		},
	}
}
