// Package planfile loads YAML plan files that describe a batch of
// issues to create in Linear.
package planfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Issue describes one issue to create. Title is required; the
// remaining fields are optional and left out of the create call when
// unset.
type Issue struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Priority    *int     `yaml:"priority"`
	Project     string   `yaml:"project"`
	State       string   `yaml:"state"`
	Labels      []string `yaml:"labels"`
}

// Plan is a batch of issues destined for one team.
type Plan struct {
	Team   string  `yaml:"team"`
	Issues []Issue `yaml:"issues"`
}

// Load reads a plan file from disk and parses it.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates plan file contents.
func Parse(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	if err := plan.validate(); err != nil {
		return nil, err
	}

	return &plan, nil
}

func (p *Plan) validate() error {
	if p.Team == "" {
		return fmt.Errorf("plan file must name a team")
	}
	if len(p.Issues) == 0 {
		return fmt.Errorf("plan file must contain at least one issue")
	}

	for i, issue := range p.Issues {
		if issue.Title == "" {
			return fmt.Errorf("issue %d: title is required", i+1)
		}
		if issue.Priority != nil && (*issue.Priority < 0 || *issue.Priority > 4) {
			return fmt.Errorf("issue %d: priority must be between 0 and 4, got: %d", i+1, *issue.Priority)
		}
	}

	return nil
}
