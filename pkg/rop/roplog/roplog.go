package roplog

import (
	"context"
	"log/slog"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/errs"
)

// ErrorAttrs describes err as structured attributes: kind (empty for
// errors without one), name and error. The trace is added at debug level
// by the taps below.
func ErrorAttrs(err error) []any {
	return []any{
		slog.String("kind", string(errs.KindOf(err))),
		slog.String("name", errs.NameOf(err)),
		slog.String("error", err.Error()),
	}
}

// LogFailure logs a failed outcome at error level, or warn for
// cancellations. Successes are not logged.
func LogFailure[T any](ctx context.Context, logger *slog.Logger, msg string, r rop.Result[T]) rop.Result[T] {
	if r.IsFailure() {
		Log[T](ctx, logger, msg, r)
	}
	return r
}

// LogResult logs successes at info level and failures like LogFailure.
func LogResult[T any](ctx context.Context, logger *slog.Logger, msg string, r rop.Result[T]) rop.Result[T] {
	if !r.IsEmpty() {
		Log[T](ctx, logger, msg, r)
	}
	return r
}

// Log writes one record for any outcome: info for a success, error for a
// failure and warn for a cancellation.
func Log[T any](ctx context.Context, logger *slog.Logger, msg string, r rop.WithCancel[T]) {
	if r.IsSuccess() {
		logger.InfoContext(ctx, msg, slog.String("outcome", "success"), slog.Any("value", r.Value()),
			slog.String("id", r.Id().String()))
		return
	}

	err := r.Err()
	attrs := append([]any{slog.String("outcome", "failure"), slog.String("id", r.Id().String())}, ErrorAttrs(err)...)
	if logger.Enabled(ctx, slog.LevelDebug) {
		attrs = append(attrs, slog.String("trace", errs.TraceOf(err)))
	}

	level := slog.LevelError
	if r.IsCancel() {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, msg, attrs...)
}
