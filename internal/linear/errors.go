package linear

import (
	"fmt"
	"strings"
)

// TransportError reports a non-success HTTP status from the Linear
// endpoint. The GraphQL payload, if any, is not inspected.
type TransportError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("linear: unexpected status %s", e.Status)
	}
	return fmt.Sprintf("linear: unexpected status code %d", e.StatusCode)
}

// ErrorDetail is a single entry from the errors array of a GraphQL
// response. Path locates the part of the document the error applies
// to when the API reports one; its elements are field names and list
// indices.
type ErrorDetail struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// APIError carries the errors array reported by the Linear API,
// verbatim. It is returned even when the response also contains data.
type APIError struct {
	Errors []ErrorDetail
}

// Error implements the error interface.
func (e *APIError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, detail := range e.Errors {
		messages[i] = detail.Message
	}
	return "linear: API error: " + strings.Join(messages, "; ")
}

// OperationError reports a mutation that completed its HTTP round trip
// but answered success=false. The API attaches no further detail.
type OperationError struct {
	Op string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("linear: %s reported failure", e.Op)
}
