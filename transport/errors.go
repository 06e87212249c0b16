package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrUnauthorized matches every *UnauthorizedError.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBusiness matches every *BusinessError.
	ErrBusiness = errors.New("business error")
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport error")
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid argument")
	// ErrResponseTooLarge is the cause of a TransportError for bodies above the
	// configured limit.
	ErrResponseTooLarge = errors.New("response body exceeds limit")
	// ErrInvalidConfig is returned by New for unusable configuration.
	ErrInvalidConfig = errors.New("invalid transport config")
)

// UnauthorizedError reports that the backend rejected the credential. By the time
// it is returned the session has been cleared and the navigator redirected.
type UnauthorizedError struct {
	Status  int
	Code    int
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// BusinessError is an application-level failure reported by the backend.
type BusinessError struct {
	Code    int
	Message string
	Status  int
}

// Error returns the server message unchanged.
func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Is(target error) bool {
	return target == ErrBusiness
}

// TransportError reports that no usable response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Timeout reports whether the request failed because its deadline expired.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// FieldError names one failed constraint.
type FieldError struct {
	Field string
	Tag   string
}

// ValidationError reports missing or malformed call arguments.
type ValidationError struct {
	Op     string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Tag == "required" {
			parts = append(parts, f.Field+" is required")
			continue
		}
		parts = append(parts, f.Field+" failed "+f.Tag)
	}
	msg := strings.Join(parts, ", ")
	if e.Op == "" {
		return "invalid argument: " + msg
	}
	return e.Op + ": invalid argument: " + msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
