package infisical

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse reports a transport failure or a response body that
// could not be decoded.
var ErrInvalidResponse = errors.New("infisical: invalid response")

// AuthError reports a failed universal-auth login.
type AuthError struct {
	// Status is the HTTP status code returned by the login endpoint.
	Status int
	// Body is the raw response body.
	Body string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("infisical: authentication failed (HTTP %d): %s", e.Status, e.Body)
}

// FetchError reports a failed secret fetch.
type FetchError struct {
	// Status is the HTTP status code returned by the secrets endpoint.
	Status int
	// Body is the raw response body.
	Body string
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("infisical: secret fetch failed (HTTP %d): %s", e.Status, e.Body)
}
