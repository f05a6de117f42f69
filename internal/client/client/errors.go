package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport failures: the request never got an HTTP
	// response.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches an HTTPError with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse reports a 2xx response without the expected shape.
	ErrMalformedResponse = errors.New("invalid response from server")
	// ErrCSRFBootstrap reports a failed CSRF token fetch.
	ErrCSRFBootstrap = errors.New("failed to get CSRF token")
)

// HTTPError is returned for every non-2xx response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrUnauthorized) match authentication failures.
func (e *HTTPError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// StatusCode extracts the HTTP status from err, or 0 if err is not an
// HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// newHTTPError builds the error for a failed response. The message comes
// from the "error" (or "detail") field of a JSON object body when present.
func newHTTPError(status int, isJSON bool, body []byte) *HTTPError {
	msg := fmt.Sprintf("HTTP error! status: %d", status)
	if isJSON {
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err == nil {
			for _, key := range []string{"error", "detail"} {
				if s, ok := payload[key].(string); ok && s != "" {
					msg = s
					break
				}
			}
		}
	}
	return &HTTPError{StatusCode: status, Message: msg}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
