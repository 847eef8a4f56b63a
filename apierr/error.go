// Package apierr defines the error taxonomy surfaced by the request
// executor and the pure status classification behind it.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an APIError with the failure class callers branch on.
type Kind string

const (
	// KindConnection covers transport failures and responses with no status.
	KindConnection Kind = "connection_error"
	// KindServiceUnavailable covers 5xx responses.
	KindServiceUnavailable Kind = "service_unavailable"
	// KindClient covers statuses in [300,500), including exhausted 429s.
	KindClient Kind = "client_error"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindConnection, KindServiceUnavailable, KindClient:
		return true
	default:
		return false
	}
}

// APIError is built once at the transport/validation boundary and never
// mutated after that.
type APIError struct {
	Kind   Kind
	URL    string // request target
	Status int    // HTTP status, 0 when none was obtained
	Body   string // raw response body when available
	Cause  error  // underlying transport error, if any
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(": status %d %s", e.Status, http.StatusText(e.Status))
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// IsConnection reports whether err wraps a connection-class APIError.
func IsConnection(err error) bool {
	return hasKind(err, KindConnection)
}

// IsServiceUnavailable reports whether err wraps a 5xx-class APIError.
func IsServiceUnavailable(err error) bool {
	return hasKind(err, KindServiceUnavailable)
}

// IsClient reports whether err wraps a client-class APIError.
func IsClient(err error) bool {
	return hasKind(err, KindClient)
}

func hasKind(err error, k Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == k
}
