package async

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/errs"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// ErrNilPromise is the failure of a function that returned no promise.
var ErrNilPromise = errors.New("async: function returned a nil promise")

// AsyncMap awaits the promise fn returns for a success value. A failure
// short-circuits without calling fn; a rejection becomes a failure.
func AsyncMap[In, Out any](ctx context.Context, input rop.Result[In],
	fn func(ctx context.Context, r In) *promise.Promise[Out]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Fail[Out](input.Err())
	}

	p := fn(ctx, input.Value())
	if p == nil {
		return rop.Fail[Out](ErrNilPromise)
	}
	return rop.FromPromise(ctx, p)
}

// AsyncFlatMap awaits a promise of the next Result and returns it as is.
func AsyncFlatMap[In, Out any](ctx context.Context, input rop.Result[In],
	fn func(ctx context.Context, r In) *promise.Promise[rop.Result[Out]]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Fail[Out](input.Err())
	}

	p := fn(ctx, input.Value())
	if p == nil {
		return rop.Fail[Out](ErrNilPromise)
	}
	next, err := p.Await(ctx)
	if !rop.IsNil(err) {
		return rop.Fail[Out](err)
	}
	return next
}

// TryCatchAsync starts fn and awaits its promise. A panic while starting
// and a rejection both end up as failures.
func TryCatchAsync[T any](ctx context.Context, fn func(ctx context.Context) *promise.Promise[T]) rop.Result[T] {
	p, err := start(ctx, fn)
	if !rop.IsNil(err) {
		return rop.Fail[T](err)
	}
	return rop.FromPromise(ctx, p)
}

func start[T any](ctx context.Context, fn func(ctx context.Context) *promise.Promise[T]) (p *promise.Promise[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if rop.IsMisuse(rec) {
				panic(rec)
			}
			p, err = nil, errs.Coerce(rec)
		}
	}()

	p = fn(ctx)
	if p == nil {
		return nil, ErrNilPromise
	}
	return p, nil
}

// Promisify adapts a callback style operation. fn receives a completion
// callback; the first call settles the Result and later calls are ignored.
// A panic inside fn before completion becomes a failure.
func Promisify[T any](ctx context.Context, fn func(done func(result T, err error))) rop.Result[T] {
	p, resolve, reject := promise.New[T]()
	done := func(result T, err error) {
		if !rop.IsNil(err) {
			reject(err)
			return
		}
		resolve(result)
	}

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				if rop.IsMisuse(rec) {
					panic(rec)
				}
				reject(errs.Coerce(rec))
			}
		}()
		fn(done)
	}()

	return rop.FromPromise(ctx, p)
}

// Promisify1 is Promisify for operations taking one argument before the
// callback.
func Promisify1[A, T any](ctx context.Context, fn func(a A, done func(result T, err error)), a A) rop.Result[T] {
	return Promisify(ctx, func(done func(T, error)) { fn(a, done) })
}

func Promisify2[A, B, T any](ctx context.Context, fn func(a A, b B, done func(result T, err error)), a A, b B) rop.Result[T] {
	return Promisify(ctx, func(done func(T, error)) { fn(a, b, done) })
}

// Go starts fn in its own goroutine and returns a promise of its Result.
// The promise never rejects unless fn panics.
func Go[T any](ctx context.Context, fn func(ctx context.Context) rop.Result[T]) *promise.Promise[rop.Result[T]] {
	return promise.Go(ctx, func(ctx context.Context) (rop.Result[T], error) {
		return fn(ctx), nil
	})
}

// All awaits the promises in order and combines their Results: all values,
// or the first failure in input order. Promises after a failure are not
// awaited.
func All[T any](ctx context.Context, promises ...*promise.Promise[rop.Result[T]]) rop.Result[[]T] {
	values := make([]T, 0, len(promises))
	for _, p := range promises {
		r, err := p.Await(ctx)
		if !rop.IsNil(err) {
			return rop.Fail[[]T](err)
		}
		if !r.IsSuccess() {
			return rop.Fail[[]T](r.Err())
		}
		values = append(values, r.Value())
	}
	return rop.Success(values)
}
