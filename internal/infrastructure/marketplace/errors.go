package marketplace

import (
	"errors"
	"fmt"
)

const (
	MessageNetwork  = "Unable to reach the marketplace service. Please check your connection and try again."
	MessageFallback = "The marketplace service could not complete the request."
)

var (
	// ErrNetwork means no response was received.
	ErrNetwork = errors.New("marketplace unreachable")
	// ErrUnauthorized means the backend rejected the session's token. The
	// credentials have already been cleared when it is returned.
	ErrUnauthorized = errors.New("marketplace unauthorized")
)

// APIError is a response the backend answered with a failure, either a
// non-2xx status or an envelope with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace: status=%d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
