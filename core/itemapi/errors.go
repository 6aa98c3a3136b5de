package itemapi

import (
	"errors"
	"fmt"
)

// ErrInvalidBaseURL is returned when the configured base URL cannot be parsed.
var ErrInvalidBaseURL = errors.New("invalid item api base url")

// APIError is returned when the item API answers with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("item api %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
