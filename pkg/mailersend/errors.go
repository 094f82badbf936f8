package mailersend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
)

// Common static errors that can be wrapped with context.
var (
	ErrValidation      = errors.New("validation failed")
	ErrTransport       = errors.New("transport failure")
	ErrKeyNotPresent   = errors.New("key not present")
	ErrAPIResponse     = errors.New("API error response")
	ErrConfigRequired  = errors.New("config is required")
	ErrMissingAPIKey   = errors.New("API key is required: set Config.APIKey or the MAILERSEND_API_KEY environment variable")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidEnvelope = errors.New("invalid envelope mapping")
	ErrFieldType       = errors.New("unexpected field type")
)

// ValidationError is returned by builders when a field or a combination of
// fields is invalid. It is never produced by the network layer.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("invalid %s %q: %s", e.Field, fmt.Sprint(e.Value), e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError describes a failure that happened before any HTTP response
// was received: DNS, connection refused, TLS, timeouts or cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Timeout reports whether the failure was a deadline or network timeout.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// KeyError is returned by the strict Envelope accessors when a key is absent
// from both the top-level and the promoted data namespaces.
type KeyError struct {
	Key    string
	Detail string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return fmt.Sprintf("key %q not present in response", e.Key)
}

// Is reports whether target is ErrKeyNotPresent.
func (e *KeyError) Is(target error) bool {
	return target == ErrKeyNotPresent
}

// APIError represents a non-2xx response from the MailerSend API.
//
// It is only created by Envelope.Err; resource clients return envelopes for
// every HTTP response.
type APIError struct {
	StatusCode int                 `json:"status_code"           yaml:"status_code"`
	Message    string              `json:"message"               yaml:"message"`
	Errors     map[string][]string `json:"errors,omitempty"      yaml:"errors,omitempty"`
	RequestID  string              `json:"request_id,omitempty"  yaml:"request_id,omitempty"`
	RetryAfter *int                `json:"retry_after,omitempty" yaml:"retry_after,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s (status: %d)", message, e.StatusCode)
	}

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Errors[field], ", "))
	}

	return fmt.Sprintf("%s: %s (status: %d)", message, strings.Join(parts, "; "), e.StatusCode)
}

// Is reports whether target is ErrAPIResponse.
func (e *APIError) Is(target error) bool {
	return target == ErrAPIResponse
}

// FieldErrors returns the messages reported for one payload field.
func (e *APIError) FieldErrors(field string) []string {
	return e.Errors[field]
}

func statusOf(err error) (int, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}

	return 0, false
}

// IsUnauthorized checks if the error is an authentication failure (401).
func IsUnauthorized(err error) bool {
	code, ok := statusOf(err)

	return ok && code == http.StatusUnauthorized
}

// IsForbidden checks if the error is an authorization failure (403).
func IsForbidden(err error) bool {
	code, ok := statusOf(err)

	return ok && code == http.StatusForbidden
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	code, ok := statusOf(err)

	return ok && code == http.StatusNotFound
}

// IsUnprocessable checks if the error is a payload validation failure (422).
func IsUnprocessable(err error) bool {
	code, ok := statusOf(err)

	return ok && code == http.StatusUnprocessableEntity
}

// IsRateLimited checks if the error is a throttling response (429).
func IsRateLimited(err error) bool {
	code, ok := statusOf(err)

	return ok && code == http.StatusTooManyRequests
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	code, ok := statusOf(err)

	return ok && code >= http.StatusInternalServerError
}
