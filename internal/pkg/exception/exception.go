package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// ValidationError carries per-field validation messages produced at the
// request boundary. Never retried.
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// ExternalAPIError is a failure reported by an outbound collaborator.
// StatusCode classifies it as transient or permanent for the gateway.
type ExternalAPIError struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e ExternalAPIError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ExternalAPIError) Unwrap() error {
	return e.Cause
}

// IsRetryable reports whether the error is an external API failure with
// a transient status code (request timeout, service unavailable, gateway
// timeout).
func IsRetryable(err error) bool {
	var apiErr ExternalAPIError

	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.StatusCode {
	case http.StatusRequestTimeout, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
