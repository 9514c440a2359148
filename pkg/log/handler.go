package log

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ErrFmtHandler is a slog middleware handler that expands error
// attributes: when a record carries an error under ErrAttrKey, the
// handler adds the error's Go type and, for cockroachdb errors, its
// captured stack trace as separate structured attributes. Estimation
// failures logged with ErrAttr thereby stay grep-able by type and
// debuggable by trace without the caller doing anything.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler with error expansion.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{handler: handler}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var logged error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			logged = err
		}
		return false
	})
	if logged != nil {
		if te := typedError(logged); te != nil {
			r.AddAttrs(slog.String(ErrorTypeKey, fmt.Sprintf("%T", te)))
		}
		if trace := extractStacktrace(logged); trace != "" {
			r.AddAttrs(slog.String(StacktraceAttrKey, trace))
		}
	}
	return eh.handler.Handle(ctx, r)
}

// typedError walks the chain for the first error carrying structured
// fields; the package's typed errors all implement
// zerolog.LogObjectMarshaler, which is the marker looked for here.
func typedError(err error) error {
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if _, ok := e.(zerolog.LogObjectMarshaler); ok {
			return e
		}
	}
	return nil
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// extractStacktrace pulls the first captured trace out of a cockroachdb
// error chain. Plain errors yield "".
func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
