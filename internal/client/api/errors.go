package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport-level failures: the request never got
	// an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks a 401 rejection of an authenticated request.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is a server rejection: an HTTP response with status >= 400.
// Message holds the server's error string when the body carried one.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 rejections.
func (e *RequestError) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}
