package errs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	maxStackDepth = 32
	causedBy      = "Caused by: "
)

type stack []uintptr

// callers records the stack of the code that called a constructor. Frames
// are resolved only when a trace is rendered.
func callers() stack {
	var pcs [maxStackDepth]uintptr
	// runtime.Callers, callers, newError, the exported constructor
	n := runtime.Callers(4, pcs[:])
	return pcs[:n:n]
}

func (s stack) writeTo(b *strings.Builder) {
	if len(s) == 0 {
		return
	}
	frames := runtime.CallersFrames(s)
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") {
			fmt.Fprintf(b, "\n    at %s (%s:%d)", f.Function, f.File, f.Line)
		}
		if !more {
			return
		}
	}
}

// Trace renders "name: message", the construction stack and then, for each
// cause, a "Caused by: " section with the cause's own trace. It is computed
// on first use and cached.
func (e *Error) Trace() string {
	e.traceOnce.Do(func() {
		var b strings.Builder
		b.WriteString(e.Name())
		b.WriteString(": ")
		b.WriteString(e.message)
		e.stack.writeTo(&b)
		if e.cause != nil {
			b.WriteString("\n")
			b.WriteString(causedBy)
			b.WriteString(TraceOf(e.cause))
		}
		e.trace = b.String()
	})
	return e.trace
}

// TraceOf renders any error. Typed errors render their Trace; other errors
// render with %+v so formatters that print stacks keep doing so.
func TraceOf(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Trace()
	}
	return fmt.Sprintf("%+v", err)
}

// Chain returns err followed by each successive cause.
func Chain(err error) []error {
	var out []error
	for err != nil {
		out = append(out, err)
		err = errors.Unwrap(err)
	}
	return out
}

// Coerce turns a recovered or thrown value into an error. Errors pass
// through unchanged.
func Coerce(v any) error {
	switch x := v.(type) {
	case nil:
		return errors.New("<nil>")
	case error:
		return x
	case string:
		return errors.New(x)
	case fmt.Stringer:
		return errors.New(x.String())
	default:
		return fmt.Errorf("%v", x)
	}
}

// FromContext converts the end of ctx into a cancellation error naming
// operation. It returns nil while ctx is still live.
func FromContext(ctx context.Context, operation string) error {
	if ctx.Err() == nil {
		return nil
	}
	cause := context.Cause(ctx)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Cancellation("Operation '"+operation+"' exceeded its deadline", operation, cause)
	}
	return Cancellation("Operation '"+operation+"' was cancelled", operation, cause)
}
