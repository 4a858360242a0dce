package cli

import (
	"context"
	"net/http"

	"github.com/Backland-Labs/linsync/internal/config"
	"github.com/Backland-Labs/linsync/internal/linear"
	"github.com/Backland-Labs/linsync/internal/logger"
)

// linearClient is the part of the Linear API client the commands use.
// Tests substitute a stub so commands run without the network.
type linearClient interface {
	Teams(ctx context.Context) ([]linear.Team, error)
	Projects(ctx context.Context, teamID string) ([]linear.Project, error)
	WorkflowStates(ctx context.Context, teamID string) ([]linear.WorkflowState, error)
	CreateIssue(ctx context.Context, params linear.CreateIssueParams) (*linear.Issue, error)
	UpdateIssue(ctx context.Context, issueID string, params linear.UpdateIssueParams) (*linear.Issue, error)
	GetIssue(ctx context.Context, identifier string) (*linear.Issue, error)
	SearchIssues(ctx context.Context, teamID, query string) ([]linear.Issue, error)
}

// newLinearClient builds the production client, with request logging
// installed on its transport. Tests replace it.
var newLinearClient = func(apiKey string) (linearClient, error) {
	httpClient := &http.Client{Transport: logger.NewTransport(nil, nil)}
	return linear.NewClientWithHTTPClient(apiKey, httpClient)
}

// clientFromEnv loads configuration and constructs a Linear client
// from it. Configuration problems surface before any client exists,
// so a missing API key never turns into a network call.
func clientFromEnv() (linearClient, error) {
	cfg, err := config.New()
	if err != nil {
		logger.Errorf("Configuration error: %v", err)
		return nil, err
	}

	logger.InitializeFromConfig(cfg)
	logger.Debugf("linear client configured (verbosity=%s)", cfg.Verbosity)

	return newLinearClient(cfg.LinearAPIKey)
}
