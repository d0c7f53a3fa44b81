package errs

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

const (
	defaultUnauthorized = "You are not authorized to perform this operation"
	defaultCancellation = "Operation was cancelled"
)

// Error is a typed failure. It owns a reference to its immediate cause,
// which may itself be an *Error, so a chain of causes is walked through
// Unwrap or rendered at once by Trace.
//
// An *Error is never modified after construction. Two errors are equal
// only if they are the same pointer.
type Error struct {
	kind    Kind
	message string
	cause   error

	resource      string
	id            string
	operationName string
	timeout       time.Duration
	operationID   string

	sentinel bool
	stack    stack

	traceOnce sync.Once
	trace     string
}

func newError(kind Kind, message string, causes []error) *Error {
	return &Error{
		kind:    kind,
		message: message,
		cause:   firstCause(causes),
		stack:   callers(),
	}
}

func firstCause(causes []error) error {
	for _, c := range causes {
		if c != nil {
			return c
		}
	}
	return nil
}

// New creates a base error carrying message as is.
func New(message string, cause ...error) *Error {
	return newError(KindBase, message, cause)
}

// Validation reports rejected input.
func Validation(detail string, cause ...error) *Error {
	return newError(KindValidation, "Validation Error: "+detail, cause)
}

// NotFound reports a missing resource. An empty id is omitted from the message.
func NotFound(resource, id string, cause ...error) *Error {
	msg := "Not Found: " + resource + " could not be found"
	if id != "" {
		msg = "Not Found: " + resource + " with id '" + id + "' could not be found"
	}
	e := newError(KindNotFound, msg, cause)
	e.resource = resource
	e.id = id
	return e
}

// Unauthorized reports a denied operation. An empty detail uses the default text.
func Unauthorized(detail string, cause ...error) *Error {
	if detail == "" {
		detail = defaultUnauthorized
	}
	return newError(KindUnauthorized, "Unauthorized: "+detail, cause)
}

func BusinessRule(detail string, cause ...error) *Error {
	return newError(KindBusinessRule, "Business Rule Violation: "+detail, cause)
}

// Technical reports an infrastructure failure.
func Technical(detail string, cause ...error) *Error {
	return newError(KindTechnical, "Technical Error: "+detail, cause)
}

// Timeout reports that operationName did not finish within timeout. The
// message renders the timeout in whole milliseconds.
func Timeout(operationName string, timeout time.Duration, cause ...error) *Error {
	msg := "Technical Error: Operation '" + operationName + "' timed out after " +
		strconv.FormatInt(timeout.Milliseconds(), 10) + "ms"
	e := newError(KindTimeout, msg, cause)
	e.operationName = operationName
	e.timeout = timeout
	return e
}

// Concurrency reports an optimistic locking conflict on resource.
func Concurrency(resource, id string, cause ...error) *Error {
	msg := "Concurrency Error: " + resource + " was modified by another process"
	if id != "" {
		msg = "Concurrency Error: " + resource + " with id '" + id + "' was modified by another process"
	}
	e := newError(KindConcurrency, msg, cause)
	e.resource = resource
	e.id = id
	return e
}

// Cancellation carries the fact that an operation was aborted. It does not
// abort anything by itself.
func Cancellation(detail, operationID string, cause ...error) *Error {
	if detail == "" {
		detail = defaultCancellation
	}
	e := newError(KindCancellation, "Cancellation: "+detail, cause)
	e.operationID = operationID
	return e
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches category sentinels: errors.Is(err, ErrTechnical) holds for
// technical, timeout and cancellation errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || !t.sentinel {
		return false
	}
	return e.kind.IsA(t.kind)
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Name returns the kind tag used for dispatch and serialization.
func (e *Error) Name() string {
	return string(e.kind)
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Resource() string {
	return e.resource
}

func (e *Error) ID() string {
	return e.id
}

func (e *Error) OperationName() string {
	return e.operationName
}

func (e *Error) Timeout() time.Duration {
	return e.timeout
}

func (e *Error) TimeoutMs() int64 {
	return e.timeout.Milliseconds()
}

func (e *Error) OperationID() string {
	return e.operationID
}

// IsA reports whether e belongs to category.
func (e *Error) IsA(category Kind) bool {
	return e.kind.IsA(category)
}

// Format implements fmt.Formatter. %+v renders the full trace; %v, %s and
// %q render the message. Other verbs are reported as bad verbs.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Trace())
			return
		}
		_, _ = io.WriteString(s, e.message)
	case 's':
		_, _ = io.WriteString(s, e.message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.message)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(errs.Error=%s)", verb, e.message)
	}
}

// sentinels for errors.Is category checks
var (
	ErrBase         = sentinel(KindBase)
	ErrValidation   = sentinel(KindValidation)
	ErrNotFound     = sentinel(KindNotFound)
	ErrUnauthorized = sentinel(KindUnauthorized)
	ErrBusinessRule = sentinel(KindBusinessRule)
	ErrTechnical    = sentinel(KindTechnical)
	ErrTimeout      = sentinel(KindTimeout)
	ErrConcurrency  = sentinel(KindConcurrency)
	ErrCancellation = sentinel(KindCancellation)
)

func sentinel(k Kind) *Error {
	return &Error{kind: k, message: string(k), sentinel: true}
}

// SentinelOf returns the errors.Is target for kind k.
func SentinelOf(k Kind) error {
	switch k {
	case KindBase:
		return ErrBase
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindUnauthorized:
		return ErrUnauthorized
	case KindBusinessRule:
		return ErrBusinessRule
	case KindTechnical:
		return ErrTechnical
	case KindTimeout:
		return ErrTimeout
	case KindConcurrency:
		return ErrConcurrency
	case KindCancellation:
		return ErrCancellation
	default:
		return nil
	}
}

// KindOf returns the kind of the first typed error in err's chain, or ""
// when the chain holds none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ""
}

// HasKind reports whether any error in err's chain belongs to category k.
func HasKind(err error, k Kind) bool {
	s := SentinelOf(k)
	if err == nil || s == nil {
		return false
	}
	return errors.Is(err, s)
}

// NameOf returns the name tag of err itself without walking its chain.
// Untyped errors are named "Error".
func NameOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Name()
	}
	return "Error"
}
