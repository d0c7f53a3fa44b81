package promise

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/ib-77/outcome/pkg/rop/errs"
)

// ErrNilRejection replaces a nil error passed to a reject function.
var ErrNilRejection = errors.New("promise rejected with nil error")

// Promise is the eventual result of an asynchronous computation. It settles
// exactly once, either fulfilled with a value or rejected with an error, and
// never changes afterwards.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// New returns a pending promise with the functions that settle it. Only the
// first call to either function has an effect.
func New[T any]() (p *Promise[T], resolve func(T), reject func(error)) {
	p = newPromise[T]()
	return p, p.resolve, p.reject
}

// Go runs fn in its own goroutine. A returned error or a panic rejects the
// promise; a panic value that is not an error is coerced into one. A nil
// pointer returned as error counts as no error.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Promise[T] {
	p := newPromise[T]()

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				p.reject(errs.Coerce(rec))
			}
		}()

		v, err := fn(ctx)
		if !isNil(err) {
			p.reject(err)
			return
		}
		p.resolve(v)
	}()

	return p
}

// Resolve returns a promise already fulfilled with v.
func Resolve[T any](v T) *Promise[T] {
	p := newPromise[T]()
	p.resolve(v)
	return p
}

// Reject returns a promise already rejected with err.
func Reject[T any](err error) *Promise[T] {
	p := newPromise[T]()
	p.reject(err)
	return p
}

func (p *Promise[T]) resolve(v T) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

func (p *Promise[T]) reject(err error) {
	if isNil(err) {
		err = ErrNilRejection
	}
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// isNil also catches a nil pointer stored in an error interface.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Done is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the promise settles or ctx ends. When ctx ends first
// the returned error is a cancellation error from errs.FromContext; the
// promise itself keeps running and may still settle later.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	default:
	}

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, errs.FromContext(ctx, "await")
	}
}
