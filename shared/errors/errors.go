package errors

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Kinds of backend call failures. A *Failure is marked with exactly one of them.
var (
	ErrNetwork     = cr.New("network failure")
	ErrHTTPStatus  = cr.New("http status failure")
	ErrParse       = cr.New("parse failure")
	ErrApplication = cr.New("application failure")
)

// Failure is a failed backend call. Message is what a user may see: the
// server-supplied error text when there was one, otherwise a default.
type Failure struct {
	Op         string
	Message    string
	StatusCode int // zero unless the backend answered
	cause      error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Kind returns the short name of the failure kind, used as a metric label.
func (f *Failure) Kind() string {
	switch {
	case cr.Is(f.cause, ErrNetwork):
		return "network"
	case cr.Is(f.cause, ErrHTTPStatus):
		return "http_status"
	case cr.Is(f.cause, ErrParse):
		return "parse"
	case cr.Is(f.cause, ErrApplication):
		return "application"
	default:
		return "unknown"
	}
}

// NewFailure wraps cause, marks it with kind and attaches the user message.
func NewFailure(op string, kind error, cause error, message string, statusCode int) *Failure {
	if cause == nil {
		cause = cr.New(message)
	}
	return &Failure{
		Op:         op,
		Message:    message,
		StatusCode: statusCode,
		cause:      cr.Mark(cr.Wrap(cause, op), kind),
	}
}

// Detail renders the failure with its cause chain for logs.
func (f *Failure) Detail() string {
	return fmt.Sprintf("%s: %v", f.Message, f.cause)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}
