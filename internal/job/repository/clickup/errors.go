package clickup

import "fmt"

// APIError is a non-success, non-throttled response from the ClickUp API.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clickup API error %d on %s: %s", e.StatusCode, e.Path, e.Body)
}
