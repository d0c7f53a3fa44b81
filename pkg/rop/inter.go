package rop

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the successful value, panicking on a failure
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id identifies the outcome
	Id() uuid.UUID
}

// WithError defines an interface for types that hold a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the failure error, panicking on a success
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the failure was a cancellation
	IsCancel() bool
}

var _ WithCancel[Unit] = Result[Unit]{}
