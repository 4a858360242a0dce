package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const linearAPIURL = "https://api.linear.app/graphql"

// Client talks to the Linear GraphQL API. All operations post to the
// same endpoint and authenticate with the API key given at
// construction. Requests are attempted exactly once; retry policy, if
// any, belongs to the caller.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Linear API client.
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithHTTPClient(apiKey, &http.Client{})
}

// NewClientWithHTTPClient creates a Linear API client that sends its
// requests through the provided http.Client, so callers can install
// their own transport. No timeout is set on requests; pass a context
// with a deadline to bound a call.
func NewClientWithHTTPClient(apiKey string, httpClient *http.Client) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     apiKey,
		endpoint:   linearAPIURL,
		httpClient: httpClient,
	}, nil
}

// graphQLRequest is the POST body Linear accepts.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// graphQLResponse is the envelope every reply comes back in.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorDetail   `json:"errors"`
}

// execute posts one GraphQL document with its variables and returns
// the raw data payload. A non-2xx status yields a TransportError and
// a non-empty errors array yields an APIError; the errors array wins
// even when the response carries data alongside it.
func (c *Client) execute(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	if variables == nil {
		variables = map[string]interface{}{}
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Linear expects the API key bare, with no Bearer prefix.
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return nil, &APIError{Errors: envelope.Errors}
	}

	return envelope.Data, nil
}

// Teams lists all teams in the workspace.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	data, err := c.execute(ctx, teamsQuery, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Teams *struct {
			Nodes []Team `json:"nodes"`
		} `json:"teams"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal teams data: %w", err)
	}

	if payload.Teams == nil {
		return nil, fmt.Errorf("teams missing from response")
	}

	return payload.Teams.Nodes, nil
}

// Projects lists the projects belonging to a team.
func (c *Client) Projects(ctx context.Context, teamID string) ([]Project, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team ID is required")
	}

	data, err := c.execute(ctx, projectsQuery, map[string]interface{}{
		"teamId": teamID,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Team *struct {
			Projects struct {
				Nodes []Project `json:"nodes"`
			} `json:"projects"`
		} `json:"team"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects data: %w", err)
	}

	if payload.Team == nil {
		return nil, fmt.Errorf("team not found")
	}

	return payload.Team.Projects.Nodes, nil
}

// WorkflowStates lists the workflow states configured for a team.
func (c *Client) WorkflowStates(ctx context.Context, teamID string) ([]WorkflowState, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team ID is required")
	}

	data, err := c.execute(ctx, workflowStatesQuery, map[string]interface{}{
		"teamId": teamID,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Team *struct {
			States struct {
				Nodes []WorkflowState `json:"nodes"`
			} `json:"states"`
		} `json:"team"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workflow states data: %w", err)
	}

	if payload.Team == nil {
		return nil, fmt.Errorf("team not found")
	}

	return payload.Team.States.Nodes, nil
}

// CreateIssue creates a new issue and returns it as Linear recorded
// it.
func (c *Client) CreateIssue(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	if params.TeamID == "" {
		return nil, fmt.Errorf("team ID is required")
	}
	if params.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	data, err := c.execute(ctx, createIssueMutation, params.variables())
	if err != nil {
		return nil, err
	}

	var payload struct {
		IssueCreate struct {
			Success bool       `json:"success"`
			Issue   *issueNode `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issue data: %w", err)
	}

	if !payload.IssueCreate.Success {
		return nil, &OperationError{Op: "issueCreate"}
	}
	if payload.IssueCreate.Issue == nil {
		return nil, fmt.Errorf("issue missing from response")
	}

	return payload.IssueCreate.Issue.toIssue(), nil
}

// UpdateIssue applies the given changes to an issue and returns the
// updated issue. At least one field must be set.
func (c *Client) UpdateIssue(ctx context.Context, issueID string, params UpdateIssueParams) (*Issue, error) {
	if issueID == "" {
		return nil, fmt.Errorf("issue ID is required")
	}
	if params.isEmpty() {
		return nil, fmt.Errorf("no fields to update")
	}

	data, err := c.execute(ctx, updateIssueMutation, params.variables(issueID))
	if err != nil {
		return nil, err
	}

	var payload struct {
		IssueUpdate struct {
			Success bool       `json:"success"`
			Issue   *issueNode `json:"issue"`
		} `json:"issueUpdate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issue data: %w", err)
	}

	if !payload.IssueUpdate.Success {
		return nil, &OperationError{Op: "issueUpdate"}
	}
	if payload.IssueUpdate.Issue == nil {
		return nil, fmt.Errorf("issue missing from response")
	}

	return payload.IssueUpdate.Issue.toIssue(), nil
}

// GetIssue fetches an issue by its human-readable identifier, such as
// ENG-123.
func (c *Client) GetIssue(ctx context.Context, identifier string) (*Issue, error) {
	if identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}

	data, err := c.execute(ctx, issueQuery, map[string]interface{}{
		"identifier": identifier,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Issue *issueNode `json:"issue"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issue data: %w", err)
	}

	if payload.Issue == nil {
		return nil, fmt.Errorf("issue not found")
	}

	return payload.Issue.toIssue(), nil
}

// SearchIssues finds issues in a team whose text matches the query.
// The query is always sent, even when empty; an empty query matches
// everything.
func (c *Client) SearchIssues(ctx context.Context, teamID, query string) ([]Issue, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team ID is required")
	}

	data, err := c.execute(ctx, searchIssuesQuery, map[string]interface{}{
		"teamId": teamID,
		"query":  query,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Team *struct {
			Issues struct {
				Nodes []issueNode `json:"nodes"`
			} `json:"issues"`
		} `json:"team"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issues data: %w", err)
	}

	if payload.Team == nil {
		return nil, fmt.Errorf("team not found")
	}

	issues := make([]Issue, 0, len(payload.Team.Issues.Nodes))
	for _, node := range payload.Team.Issues.Nodes {
		issues = append(issues, *node.toIssue())
	}

	return issues, nil
}
