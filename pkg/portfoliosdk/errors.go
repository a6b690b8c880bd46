package portfoliosdk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portfolio api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("portfolio api: %d: %s", e.StatusCode, e.Message)
}

// ErrNotLoggedIn is returned by admin calls made before Login or SetToken.
var ErrNotLoggedIn = errors.New("portfoliosdk: no session token; call Login first")

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
