package entities

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failures a payment gateway reports to callers.
// Both the live and the simulated gateway use the same kinds for the same conditions.

type ErrorKind string

const (
	KindValidation      ErrorKind = "VALIDATION"
	KindAuth            ErrorKind = "AUTH"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindDuplicate       ErrorKind = "DUPLICATE"
	KindUpstreamTimeout ErrorKind = "UPSTREAM_TIMEOUT"
	KindUpstream        ErrorKind = "UPSTREAM"
	KindProtocol        ErrorKind = "PROTOCOL"
)

var (
	ErrValidation      = &GatewayError{Kind: KindValidation}
	ErrAuth            = &GatewayError{Kind: KindAuth}
	ErrNotFound        = &GatewayError{Kind: KindNotFound}
	ErrDuplicate       = &GatewayError{Kind: KindDuplicate}
	ErrUpstreamTimeout = &GatewayError{Kind: KindUpstreamTimeout}
	ErrUpstream        = &GatewayError{Kind: KindUpstream}
	ErrProtocol        = &GatewayError{Kind: KindProtocol}
)

// GatewayError carries the kind used for errors.Is matching plus an optional
// upstream status and cause for logs.
type GatewayError struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int
	Err        error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Is matches on Kind so that errors.Is(err, ErrNotFound) works for any not-found error.
func (e *GatewayError) Is(target error) bool {
	t, ok := target.(*GatewayError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, or "" when err is not a gateway error.
func KindOf(err error) ErrorKind {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

func NewValidationError(msg string) error {
	return &GatewayError{Kind: KindValidation, Message: msg}
}

func NewAuthError(msg string, err error) error {
	return &GatewayError{Kind: KindAuth, Message: msg, Err: err}
}

func NewNotFoundError(msg string) error {
	return &GatewayError{Kind: KindNotFound, Message: msg}
}

func NewDuplicateError(msg string) error {
	return &GatewayError{Kind: KindDuplicate, Message: msg}
}

func NewUpstreamTimeoutError(msg string, err error) error {
	return &GatewayError{Kind: KindUpstreamTimeout, Message: msg, Err: err}
}

func NewUpstreamError(msg string, status int, err error) error {
	return &GatewayError{Kind: KindUpstream, Message: msg, HTTPStatus: status, Err: err}
}

func NewProtocolError(msg string, err error) error {
	return &GatewayError{Kind: KindProtocol, Message: msg, Err: err}
}
