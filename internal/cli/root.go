package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Backland-Labs/linsync/internal/logger"
	"github.com/Backland-Labs/linsync/internal/output"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Execute runs the CLI
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received shutdown signal")
		printer := output.NewPrinter()
		printer.Warning("\nInterrupt received, shutting down gracefully...")
		cancel()
	}()

	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root command with all subcommands attached
func NewRootCommand() *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "linsync <command>",
		Short: "linsync - Linear issue tracking from the command line",
		Long: `linsync - Linear issue tracking from the command line

linsync talks to the Linear GraphQL API to list teams, projects, and
workflow states, and to create, inspect, update, and search issues.
Authentication uses the LINEAR_API_KEY environment variable.

Examples:
  linsync teams
  linsync projects <team_id>
  linsync create <team_id> "Fix login crash"
  linsync update ENG-123 --state <state_id>
  linsync sync plan.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "linsync version "+version)
				return err
			}
			// Unknown subcommands are rejected by cobra before RunE, so
			// reaching here means the binary was invoked bare.
			return fmt.Errorf("a command is required")
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	cmd.AddCommand(
		newTeamsCommand(),
		newProjectsCommand(),
		newStatesCommand(),
		newCreateCommand(),
		newUpdateCommand(),
		newGetCommand(),
		newSearchCommand(),
		newSyncCommand(),
		newValidateCommand(),
	)

	return cmd
}

// newPrinter binds a printer to the command's streams so tests can
// capture output. Color only engages when writing to a real terminal.
func newPrinter(cmd *cobra.Command) *output.Printer {
	useColor := cmd.OutOrStdout() == os.Stdout && output.TerminalColorEnabled()
	return output.NewPrinterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColor)
}
