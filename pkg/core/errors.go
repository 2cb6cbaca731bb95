package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions detected before any network I/O.
var (
	// ErrMissingSecret is returned when a signing or private operation is
	// attempted without a configured secret.
	ErrMissingSecret = errors.New("secret key is required for private API calls")
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// ArgumentError reports an invalid parameter combination detected before a
// request is dispatched.
type ArgumentError struct {
	// Param is the offending or missing parameter name.
	Param string
	// Reason describes what the protocol requires.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

// NewArgumentError creates an ArgumentError for the given parameter.
func NewArgumentError(param, reason string) *ArgumentError {
	return &ArgumentError{Param: param, Reason: reason}
}

// APIError represents a non-success HTTP response from the exchange.
// It carries the status code and the raw body so callers can inspect the
// exchange-specific payload; the client never interprets it further.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int `json:"status_code"`
	// Body is the raw response body.
	Body []byte `json:"body,omitempty"`
	// Message is the exchange-provided error description, when the body
	// carried one.
	Message string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("dextrade: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("dextrade: http %d", e.StatusCode)
}

// NewAPIError creates an APIError for the given status and body.
func NewAPIError(statusCode int, body []byte, message string) *APIError {
	return &APIError{StatusCode: statusCode, Body: body, Message: message}
}

// IsMissingSecret reports whether err is the missing-secret condition.
func IsMissingSecret(err error) bool {
	return errors.Is(err, ErrMissingSecret)
}

// IsArgumentError reports whether err is an invalid-argument condition.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// IsAPIError reports whether err is a non-success HTTP response, and
// returns it when so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
