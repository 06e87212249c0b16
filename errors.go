package goEdu

import (
	"errors"

	"github.com/MrEthical07/goEdu/transport"
)

// Call errors. Match with errors.Is; use errors.As with the typed forms for the
// backend code and message.
var (
	ErrUnauthorized     = transport.ErrUnauthorized
	ErrBusiness         = transport.ErrBusiness
	ErrTransport        = transport.ErrTransport
	ErrValidation       = transport.ErrValidation
	ErrResponseTooLarge = transport.ErrResponseTooLarge
	ErrInvalidConfig    = transport.ErrInvalidConfig
)

var (
	// ErrBuilderUsed is returned by a second Build on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrClientClosed is returned by calls made after Close.
	ErrClientClosed = errors.New("client closed")
	// ErrNotStudent is returned by student-only helpers for other roles.
	ErrNotStudent = errors.New("signed-in user is not a student")
)

type (
	UnauthorizedError = transport.UnauthorizedError
	BusinessError     = transport.BusinessError
	TransportError    = transport.TransportError
	ValidationError   = transport.ValidationError
	FieldError        = transport.FieldError
)
