package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed operation. Every backend call resolves to
// exactly one kind, so callers branch on the kind instead of re-inspecting
// transport details at each call site.
type ErrorKind string

const (
	// KindValidation: rejected locally before any network traffic.
	KindValidation ErrorKind = "validation"
	// KindUnauthorized: the backend answered 401. The session has already
	// been invalidated by the time the caller sees this.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindRequest: any other 4xx/5xx. Local to the initiating call.
	KindRequest ErrorKind = "request"
	// KindTransport: the request never produced an HTTP response.
	KindTransport ErrorKind = "transport"
)

// APIError is the terminal outcome of a failed operation. No retries happen
// anywhere in the client; a new user action is required after any failure.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ValidationError builds a local pre-dispatch rejection.
func ValidationError(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

func errorFor(status int, message string) *APIError {
	kind := KindRequest
	if status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

func kindOf(err error) ErrorKind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsUnauthorized reports whether err is the global 401 escalation path.
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }

// IsValidation reports whether err was rejected before dispatch.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }
