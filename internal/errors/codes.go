package errors

import (
	"context"
	stderrors "errors"
	"net/http"
)

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                Code = "OK"
	CodeCanceled          Code = "CANCELED"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeInternal          Code = "INTERNAL"
	CodeUnavailable       Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// FromHTTPStatus maps an upstream HTTP status onto a code. Any 2xx is OK.
func FromHTTPStatus(status int) Code {
	switch {
	case status >= 200 && status < 300:
		return CodeOK
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusTooManyRequests:
		return CodeResourceExhausted
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	case status >= 400 && status < 500:
		return CodeInvalidArgument
	default:
		return CodeUnavailable
	}
}

// FromContext returns the code for a context error, or CodeUnavailable for
// anything else a transport can fail with.
func FromContext(err error) Code {
	switch {
	case stderrors.Is(err, context.Canceled):
		return CodeCanceled
	case stderrors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	default:
		return CodeUnavailable
	}
}
