package rop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/rop/errs"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// Unit is the value of a success that carries nothing.
type Unit struct{}

// Result is either a success holding a value or a failure holding a
// non-nil error. It is a value type without setters: every operation that
// changes something returns a new Result.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OK returns a success without a meaningful value.
func OK() Result[Unit] {
	return Success(Unit{})
}

// Fail returns a failure. A nil error, including a typed nil pointer, is a
// programming error and panics with a *MisuseError.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		panic(misuse("Fail", ErrNilError, nil))
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromThrowable calls fn and captures both a returned error and a panic as
// a failure. Misuse panics from this package are not captured.
func FromThrowable[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if IsMisuse(rec) {
				panic(rec)
			}
			res = Fail[T](errs.Coerce(rec))
		}
	}()

	v, err := fn()
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(v)
}

// FromPromise waits for p to settle. A rejection becomes a failure, so the
// call itself never fails; if ctx ends first the failure is a cancellation.
func FromPromise[T any](ctx context.Context, p *promise.Promise[T]) Result[T] {
	v, err := p.Await(ctx)
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(v)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsCancel reports a failure caused by cancellation: a CancellationError or
// a context that was cancelled or ran past its deadline.
func (r Result[T]) IsCancel() bool {
	return r.IsFailure() && IsCancellationError(r.err)
}

// IsEmpty reports a zero Result that was never constructed.
func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

// Value returns the success value. It panics with a *MisuseError on a
// failure.
func (r Result[T]) Value() T {
	r.mustBeConstructed("Value")
	if !r.isSuccess {
		panic(misuse("Value", ErrValueOnFailure, r.err))
	}
	return r.value
}

// Err returns the failure error. It panics with a *MisuseError on a
// success.
func (r Result[T]) Err() error {
	r.mustBeConstructed("Err")
	if r.isSuccess {
		panic(misuse("Err", ErrErrorOnSuccess, nil))
	}
	return r.err
}

// Get returns the payload the way Go functions usually do.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// ErrOrNil returns the failure error or nil.
func (r Result[T]) ErrOrNil() error {
	return r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// MapError replaces the error of a failure with fn(err). Successes pass
// through.
func (r Result[T]) MapError(fn func(err error) error) Result[T] {
	if r.IsFailure() {
		return Fail[T](fn(r.err))
	}
	return r
}

// Tap calls fn with the value of a success and returns r unchanged.
func (r Result[T]) Tap(fn func(v T)) Result[T] {
	if r.isSuccess {
		fn(r.value)
	}
	return r
}

// TapError calls fn with the error of a failure and returns r unchanged.
func (r Result[T]) TapError(fn func(err error)) Result[T] {
	if r.IsFailure() {
		fn(r.err)
	}
	return r
}

func (r Result[T]) GetOrElse(defaultValue T) T {
	if r.isSuccess {
		return r.value
	}
	return defaultValue
}

// GetOrCall returns the value of a success or computes one from the error.
func (r Result[T]) GetOrCall(fn func(err error) T) T {
	if r.isSuccess {
		return r.value
	}
	r.mustBeConstructed("GetOrCall")
	return fn(r.err)
}

// Recover replaces a failure with fn(err).
func (r Result[T]) Recover(fn func(err error) Result[T]) Result[T] {
	if r.IsFailure() {
		return fn(r.err)
	}
	return r
}

// OrElse returns alternative when r is a failure. The alternative is built
// by the caller before the call.
func (r Result[T]) OrElse(alternative Result[T]) Result[T] {
	if r.IsFailure() {
		return alternative
	}
	return r
}

// ToPromise returns a promise fulfilled with the value or rejected with the
// error.
func (r Result[T]) ToPromise() *promise.Promise[T] {
	r.mustBeConstructed("ToPromise")
	if r.isSuccess {
		return promise.Resolve(r.value)
	}
	return promise.Reject[T](r.err)
}

func (r Result[T]) String() string {
	switch {
	case r.isSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case r.err != nil:
		return fmt.Sprintf("Failure(%s: %s)", errs.NameOf(r.err), r.err.Error())
	default:
		return "Empty"
	}
}

func (r Result[T]) mustBeConstructed(op string) {
	if r.IsEmpty() {
		panic(misuse(op, ErrEmptyResult, nil))
	}
}
