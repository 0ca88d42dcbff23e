package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork      ErrorType = "network"
	ErrorTypeTimeout      ErrorType = "timeout"
	ErrorTypeHTTPStatus   ErrorType = "http_status"
	ErrorTypeParsing      ErrorType = "parsing"
	ErrorTypeMalformedRow ErrorType = "malformed_row"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeFilesystem   ErrorType = "filesystem"
)

// Error is a classified failure carrying the underlying cause
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransport classifies a request failure. Timeouts become ErrorTypeTimeout.
func NewTransport(url string, err error) *Error {
	if isTimeoutCause(err) {
		return NewTimeout(url, err)
	}
	return &Error{
		Type:    ErrorTypeNetwork,
		Message: fmt.Sprintf("request to %s failed", url),
		Err:     err,
	}
}

// NewTimeout reports a request that exceeded its deadline
func NewTimeout(url string, err error) *Error {
	return &Error{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("request to %s timed out", url),
		Err:     err,
	}
}

// NewStatus reports a non-success HTTP status
func NewStatus(url string, code int) *Error {
	t := ErrorTypeHTTPStatus
	if code == 404 {
		t = ErrorTypeNotFound
	}
	return &Error{
		Type:    t,
		Message: fmt.Sprintf("unexpected status from %s", url),
		Code:    code,
	}
}

// NewParse reports that the expected page structure is missing
func NewParse(message string) *Error {
	return &Error{
		Type:    ErrorTypeParsing,
		Message: message,
	}
}

// NewMalformedRow reports a table row that lacks a required element
func NewMalformedRow(message string) *Error {
	return &Error{
		Type:    ErrorTypeMalformedRow,
		Message: message,
	}
}

// NewFilesystem wraps a local storage failure
func NewFilesystem(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeFilesystem,
		Message: message,
		Err:     err,
	}
}

// Is reports whether err is an *Error of the given type
func Is(err error, t ErrorType) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsTimeout checks if err is a classified or raw timeout
func IsTimeout(err error) bool {
	return Is(err, ErrorTypeTimeout) || isTimeoutCause(err)
}

// IsTransport checks if err happened while talking to the remote site
func IsTransport(err error) bool {
	return Is(err, ErrorTypeNetwork) || Is(err, ErrorTypeTimeout) ||
		Is(err, ErrorTypeHTTPStatus) || Is(err, ErrorTypeNotFound)
}

// IsParse checks if err means the page did not have the expected structure
func IsParse(err error) bool {
	return Is(err, ErrorTypeParsing)
}

func isTimeoutCause(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
