package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/Backland-Labs/linsync/internal/linear"
	"github.com/stretchr/testify/mock"
)

// MockLinearClient stands in for the API client behind the
// newLinearClient seam.
type MockLinearClient struct {
	mock.Mock
}

func (m *MockLinearClient) Teams(ctx context.Context) ([]linear.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]linear.Team), args.Error(1)
}

func (m *MockLinearClient) Projects(ctx context.Context, teamID string) ([]linear.Project, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]linear.Project), args.Error(1)
}

func (m *MockLinearClient) WorkflowStates(ctx context.Context, teamID string) ([]linear.WorkflowState, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]linear.WorkflowState), args.Error(1)
}

func (m *MockLinearClient) CreateIssue(ctx context.Context, params linear.CreateIssueParams) (*linear.Issue, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*linear.Issue), args.Error(1)
}

func (m *MockLinearClient) UpdateIssue(ctx context.Context, issueID string, params linear.UpdateIssueParams) (*linear.Issue, error) {
	args := m.Called(ctx, issueID, params)
	return args.Get(0).(*linear.Issue), args.Error(1)
}

func (m *MockLinearClient) GetIssue(ctx context.Context, identifier string) (*linear.Issue, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(*linear.Issue), args.Error(1)
}

func (m *MockLinearClient) SearchIssues(ctx context.Context, teamID, query string) ([]linear.Issue, error) {
	args := m.Called(ctx, teamID, query)
	return args.Get(0).([]linear.Issue), args.Error(1)
}

// stubClient routes newLinearClient to the given client for the
// duration of one test. The returned flag reports whether the factory
// was actually hit, so usage-error cases can assert that no client
// was ever built.
func stubClient(t *testing.T, client linearClient) *bool {
	t.Helper()

	called := false
	orig := newLinearClient
	newLinearClient = func(apiKey string) (linearClient, error) {
		called = true
		return client, nil
	}
	t.Cleanup(func() { newLinearClient = orig })
	return &called
}

// executeCommand runs the root command with the given args and returns
// the combined output.
func executeCommand(args ...string) (string, error) {
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
