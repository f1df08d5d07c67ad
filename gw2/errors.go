package gw2

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the client.
var (
	// ErrNoToken is returned when an account-bound endpoint is called on a
	// client without a configured API token.
	ErrNoToken = errors.New("no API token configured")
)

// APIError is a failure documented by the remote API, decoded from its
// uniform error body.
type APIError struct {
	// StatusCode is the HTTP status the API answered with.
	StatusCode int `json:"-"`
	// Text is the human-readable message sent by the API.
	Text string `json:"text"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("gw2 API error: status %d: %s", e.StatusCode, e.Text)
}

// IsNotFound checks if the error indicates an unknown ID
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsPermissionDenied checks if the error indicates a missing or
// under-scoped token
func (e *APIError) IsPermissionDenied() bool {
	return e.StatusCode == http.StatusForbidden
}

// UnexpectedStatusError is returned when the API answers with a status code
// the endpoint does not document as either success or failure.
type UnexpectedStatusError struct {
	StatusCode int
}

// Error implements the error interface
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("gw2 API returned unknown status code: %d", e.StatusCode)
}

// DecodeError is returned when a response body does not match the shape the
// endpoint declares. For a success status this means the client's types have
// drifted from the API schema, which is a more severe condition than a
// documented API failure.
type DecodeError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("gw2 API response (status %d) could not be decoded: %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
