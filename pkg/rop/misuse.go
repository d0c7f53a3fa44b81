package rop

import (
	"errors"
)

// Misuse sentinels. They describe bugs in calling code and are raised as
// panics, never carried inside a failure.
var (
	ErrValueOnFailure = errors.New("value accessed on a failed result")
	ErrErrorOnSuccess = errors.New("error accessed on a successful result")
	ErrNilError       = errors.New("failure constructed with a nil error")
	ErrEmptyResult    = errors.New("result was never constructed")
)

// MisuseError is the panic value for a violated access contract.
type MisuseError struct {
	// Op is the method that was misused.
	Op string
	// Outcome is the failure error when a value was read from a failure.
	Outcome error

	reason error
}

func misuse(op string, reason, outcome error) *MisuseError {
	return &MisuseError{Op: op, Outcome: outcome, reason: reason}
}

func (e *MisuseError) Error() string {
	msg := "rop: " + e.Op + ": " + e.reason.Error()
	if e.Outcome != nil {
		msg += " (" + e.Outcome.Error() + ")"
	}
	return msg
}

func (e *MisuseError) Unwrap() error {
	return e.reason
}

// IsMisuse reports whether a recovered panic value is a *MisuseError.
func IsMisuse(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var m *MisuseError
	return errors.As(err, &m)
}
