package sportradar

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Common errors
var (
	// ErrUnknownSport indicates a sport name with no registered client
	ErrUnknownSport = errors.New("unknown sport")
	// ErrMissingAPIKey indicates a client was configured without an API key
	ErrMissingAPIKey = errors.New("sportradar API key is required")
	// ErrInvalidAccessLevel indicates an access level other than trial or production
	ErrInvalidAccessLevel = errors.New("invalid access level")
	// ErrMissingParam indicates a path segment required by an endpoint was empty
	ErrMissingParam = errors.New("missing required parameter")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the account exceeded its request quota
	ErrRateLimited = errors.New("rate limit exceeded")
)

// RequestError is returned for every failed request. Params and URL hold the
// request query with the api_key value masked; the key itself is never kept.
type RequestError struct {
	Method     string
	Path       string
	URL        string
	StatusCode int
	Status     string
	Body       string
	Params     url.Values
	Err        error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sportradar API error: %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("sportradar API error: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is matches the status-derived sentinel errors.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.IsUnauthorized()
	case ErrNotFound:
		return e.IsNotFound()
	case ErrRateLimited:
		return e.IsRateLimited()
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates the quota was exceeded
func (e *RequestError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func missingParam(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingParam, name)
}
