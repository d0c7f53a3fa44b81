package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/errs"
	"github.com/ib-77/outcome/pkg/rop/promise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(ctx context.Context, n int) *promise.Promise[int] {
	return promise.Go(ctx, func(ctx context.Context) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return n * 2, nil
	})
}

func TestAsyncMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := AsyncMap(ctx, rop.Success(21), double)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Value())

	boom := errors.New("boom")
	res = AsyncMap(ctx, rop.Success(1), func(ctx context.Context, n int) *promise.Promise[int] {
		return promise.Reject[int](boom)
	})
	assert.Same(t, boom, res.Err())

	called := false
	first := errs.Validation("first")
	res = AsyncMap(ctx, rop.Fail[int](first), func(ctx context.Context, n int) *promise.Promise[int] {
		called = true
		return double(ctx, n)
	})
	assert.False(t, called)
	assert.Same(t, first, res.Err())

	res = AsyncMap(ctx, rop.Success(1), func(ctx context.Context, n int) *promise.Promise[int] { return nil })
	assert.ErrorIs(t, res.Err(), ErrNilPromise)
}

func TestAsyncFlatMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	lookup := func(ctx context.Context, id string) *promise.Promise[rop.Result[string]] {
		return Go(ctx, func(ctx context.Context) rop.Result[string] {
			if id == "1" {
				return rop.Success("alice")
			}
			return rop.Fail[string](errs.NotFound("User", id))
		})
	}

	res := AsyncFlatMap(ctx, rop.Success("1"), lookup)
	assert.Equal(t, "alice", res.Value())

	res = AsyncFlatMap(ctx, rop.Success("2"), lookup)
	assert.Equal(t, "Not Found: User with id '2' could not be found", res.Err().Error())

	first := errors.New("upstream")
	res = AsyncFlatMap(ctx, rop.Fail[string](first), lookup)
	assert.Same(t, first, res.Err())
}

func TestTryCatchAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := TryCatchAsync(ctx, func(ctx context.Context) *promise.Promise[string] {
		return promise.Resolve("ok")
	})
	assert.Equal(t, "ok", res.Value())

	rejected := errs.Technical("remote")
	res = TryCatchAsync(ctx, func(ctx context.Context) *promise.Promise[string] {
		return promise.Reject[string](rejected)
	})
	assert.Same(t, rejected, res.Err())

	res = TryCatchAsync(ctx, func(ctx context.Context) *promise.Promise[string] {
		panic("sync throw")
	})
	assert.EqualError(t, res.Err(), "sync throw")

	res = TryCatchAsync(ctx, func(ctx context.Context) *promise.Promise[string] {
		return promise.Go(ctx, func(ctx context.Context) (string, error) { panic(errors.New("async throw")) })
	})
	assert.EqualError(t, res.Err(), "async throw")
}

func TestTryCatchAsync_TypedNilError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	lookup := func(ctx context.Context) (int, *errs.Error) { return 7, nil }

	res := TryCatchAsync(ctx, func(ctx context.Context) *promise.Promise[int] {
		return promise.Go(ctx, func(ctx context.Context) (int, error) { return lookup(ctx) })
	})
	require.True(t, res.IsSuccess())
	assert.Equal(t, 7, res.Value())

	res = AsyncMap(ctx, rop.Success(1), func(ctx context.Context, n int) *promise.Promise[int] {
		return promise.Go(ctx, func(ctx context.Context) (int, error) { return lookup(ctx) })
	})
	assert.Equal(t, 7, res.Value())
}

func TestTryCatchAsync_ContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := TryCatchAsync(ctx, func(ctx context.Context) *promise.Promise[int] {
		p, _, _ := promise.New[int]()
		return p
	})
	assert.True(t, res.IsCancel())
}

func TestPromisify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Promisify(ctx, func(done func(int, error)) {
		go done(7, nil)
	})
	assert.Equal(t, 7, res.Value())

	boom := errors.New("callback error")
	res = Promisify(ctx, func(done func(int, error)) {
		done(0, boom)
		done(1, nil)
	})
	assert.Same(t, boom, res.Err())

	res = Promisify(ctx, func(done func(int, error)) { panic("before callback") })
	assert.EqualError(t, res.Err(), "before callback")
}

func TestPromisifyWithArgs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	readFile := func(name string, done func(string, error)) {
		if name == "" {
			done("", errs.Validation("name is empty"))
			return
		}
		done("content of "+name, nil)
	}
	assert.Equal(t, "content of a.txt", Promisify1(ctx, readFile, "a.txt").Value())
	assert.Equal(t, errs.KindValidation, errs.KindOf(Promisify1(ctx, readFile, "").Err()))

	add := func(a, b int, done func(int, error)) { done(a+b, nil) }
	assert.Equal(t, 5, Promisify2(ctx, add, 2, 3).Value())
}

func TestGoAndAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mk := func(n int, err error) *promise.Promise[rop.Result[int]] {
		return Go(ctx, func(ctx context.Context) rop.Result[int] {
			time.Sleep(time.Duration(10-n) * time.Millisecond)
			if err != nil {
				return rop.Fail[int](err)
			}
			return rop.Success(n)
		})
	}

	res := All(ctx, mk(1, nil), mk(2, nil), mk(3, nil))
	assert.Equal(t, []int{1, 2, 3}, res.Value())

	second := errors.New("second")
	res = All(ctx, mk(1, nil), mk(2, second), mk(3, errors.New("third")))
	assert.Same(t, second, res.Err())

	empty := All[int](ctx)
	assert.Equal(t, []int{}, empty.Value())
}
