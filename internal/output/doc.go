// Package output prints user-facing CLI messages, in color when the
// destination is a terminal that wants it. Color is skipped for pipes
// and whenever NO_COLOR is set, and a Printer can be pointed at any
// pair of writers, which keeps command output easy to test.
//
// Example usage:
//
//	printer := output.NewPrinter()
//	printer.Step("Creating %d issue(s) for team %s", n, teamID)
//	printer.Success("Created issue: %s", issue.Identifier)
//	printer.Error("%v", err)
package output
