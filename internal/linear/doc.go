// Package linear is a minimal client for Linear's GraphQL API. It
// covers the operations linsync needs: listing teams, projects, and
// workflow states, and creating, updating, fetching, and searching
// issues.
//
// Every call needs an API key, generated from Linear settings at
// https://linear.app/settings/api. The key is passed as-is in the
// Authorization header; Linear does not use a Bearer prefix for
// personal API keys.
//
// Example usage:
//
//	client, err := linear.NewClient(apiKey)
//	if err != nil {
//	    return err
//	}
//
//	issue, err := client.CreateIssue(ctx, linear.CreateIssueParams{
//	    TeamID: teamID,
//	    Title:  "Fix login crash",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println("created", issue.Identifier)
//
// Failures are reported through three error types that callers can
// pick apart with errors.As: TransportError for non-2xx HTTP statuses,
// APIError for GraphQL-level errors, and OperationError for mutations
// that answer success=false.
package linear
