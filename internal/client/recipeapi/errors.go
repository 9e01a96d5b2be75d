package recipeapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
)

// Kind classifies a recipe API failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidRequest
	KindInvalidResponse
	KindNoConnectivity
	KindTimeout
	KindHTTPStatus
	KindDecodeFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid request"
	case KindInvalidResponse:
		return "invalid server response"
	case KindNoConnectivity:
		return "no internet connection"
	case KindTimeout:
		return "request timed out"
	case KindHTTPStatus:
		return "server error"
	case KindDecodeFailure:
		return "data parsing error"
	default:
		return "unknown error"
	}
}

// Error is returned by every Source method. errors.Is matches it against the
// package sentinels by Kind, and against HTTPStatusError by Kind and code.
type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Kind == KindHTTPStatus {
		msg = fmt.Sprintf("%s: %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

var (
	ErrInvalidRequest  = &Error{Kind: KindInvalidRequest}
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse}
	ErrNoConnectivity  = &Error{Kind: KindNoConnectivity}
	ErrTimeout         = &Error{Kind: KindTimeout}
	ErrHTTPStatus      = &Error{Kind: KindHTTPStatus}
	ErrDecodeFailure   = &Error{Kind: KindDecodeFailure}
	ErrUnknown         = &Error{Kind: KindUnknown}
)

// HTTPStatusError matches an HTTP status failure with the given code.
func HTTPStatusError(code int) error {
	return &Error{Kind: KindHTTPStatus, StatusCode: code}
}

// classifyTransport maps an error from http.Client.Do or from ctx to an *Error.
func classifyTransport(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindNoConnectivity, Err: err}
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH) {
		return &Error{Kind: KindNoConnectivity, Err: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &Error{Kind: KindNoConnectivity, Err: err}
	}

	return &Error{Kind: KindUnknown, Err: err}
}

// tripsBreaker reports whether err counts as an upstream failure.
func tripsBreaker(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err != nil
	}
	switch apiErr.Kind {
	case KindNoConnectivity, KindTimeout:
		return true
	case KindHTTPStatus:
		return apiErr.StatusCode >= 500
	default:
		return false
	}
}
