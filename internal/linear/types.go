package linear

// Team is an organizational grouping in Linear that owns projects,
// workflow states, and issues.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Project represents a Linear project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	State       string `json:"state"`
}

// WorkflowState is a named status value assignable to an issue,
// scoped to a team. Depending on the operation that produced it, only
// a subset of the fields may be populated.
type WorkflowState struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// Issue represents a Linear issue. The client holds no local copy
// beyond the value returned from a call; Linear is the source of truth.
type Issue struct {
	ID          string
	Identifier  string
	Title       string
	Description string
	Priority    int
	URL         string
	State       *WorkflowState
	Labels      []string
}

// CreateIssueParams describes a new issue. TeamID and Title are
// required. Optional fields are left out of the mutation variables
// entirely when unset, so Linear applies its own defaults; they are
// never sent as explicit nulls.
type CreateIssueParams struct {
	TeamID      string
	Title       string
	Description string
	Priority    *int
	ProjectID   string
	StateID     string

	// Labels collects label names for the new issue. The issueCreate
	// mutation expects label IDs, and no name-to-ID resolution is
	// implemented, so label names are accepted but never sent.
	// TODO: resolve names to IDs via the team labels query and
	// populate $labelIds.
	Labels []string
}

// variables builds the mutation variables, starting from the required
// fields and inserting optional keys only when the caller supplied
// them.
func (p CreateIssueParams) variables() map[string]interface{} {
	vars := map[string]interface{}{
		"teamId": p.TeamID,
		"title":  p.Title,
	}
	if p.Description != "" {
		vars["description"] = p.Description
	}
	if p.Priority != nil {
		vars["priority"] = *p.Priority
	}
	if p.ProjectID != "" {
		vars["projectId"] = p.ProjectID
	}
	if p.StateID != "" {
		vars["stateId"] = p.StateID
	}
	return vars
}

// UpdateIssueParams describes changes to an existing issue. Every
// field is optional; unset fields are omitted from the mutation
// variables so the corresponding issue fields are left untouched.
type UpdateIssueParams struct {
	StateID     string
	Title       string
	Description string
}

func (p UpdateIssueParams) variables(issueID string) map[string]interface{} {
	vars := map[string]interface{}{
		"issueId": issueID,
	}
	if p.StateID != "" {
		vars["stateId"] = p.StateID
	}
	if p.Title != "" {
		vars["title"] = p.Title
	}
	if p.Description != "" {
		vars["description"] = p.Description
	}
	return vars
}

// isEmpty reports whether the params carry no changes at all.
func (p UpdateIssueParams) isEmpty() bool {
	return p.StateID == "" && p.Title == "" && p.Description == ""
}

// issueNode mirrors the issue shape Linear returns. Queries select
// different subsets of these fields, so pointers mark the pieces that
// may be absent.
type issueNode struct {
	ID          string         `json:"id"`
	Identifier  string         `json:"identifier"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Priority    int            `json:"priority"`
	URL         string         `json:"url"`
	State       *WorkflowState `json:"state"`
	Labels      *struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"labels"`
}

// toIssue flattens the wire shape into the public Issue type.
func (n *issueNode) toIssue() *Issue {
	issue := &Issue{
		ID:         n.ID,
		Identifier: n.Identifier,
		Title:      n.Title,
		Priority:   n.Priority,
		URL:        n.URL,
		State:      n.State,
	}
	if n.Description != nil {
		issue.Description = *n.Description
	}
	if n.Labels != nil {
		for _, label := range n.Labels.Nodes {
			issue.Labels = append(issue.Labels, label.Name)
		}
	}
	return issue
}
