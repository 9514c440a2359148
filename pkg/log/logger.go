package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog default logger at the given level,
// wrapped so that estimation errors carry their stack traces as a
// structured attribute. Call it once at program start; library code only
// ever reads the default through Default.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

// ToLogLevel maps a level name to its slog level. Unknown names panic;
// the level string is startup configuration, not runtime input.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

// Default returns a Logger backed by the process-wide slog default logger.
// Estimators use this when no logger is injected via options.
func Default() Logger {
	return &slogLogger{l: slog.Default()}
}

// NewLogger returns a Logger backed by the given slog handler. Wrap the
// handler with WrapByErrFmtHandler to get stacktrace extraction for
// cockroachdb errors.
func NewLogger(handler slog.Handler) Logger {
	return &slogLogger{l: slog.New(handler)}
}

// Debug implements Logger.Debug.
func (s *slogLogger) Debug(msg string, fields ...any) {
	s.l.Debug(msg, fields...)
}

// Info implements Logger.Info.
func (s *slogLogger) Info(msg string, fields ...any) {
	s.l.Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (s *slogLogger) Warn(msg string, fields ...any) {
	s.l.Warn(msg, fields...)
}

// Error implements Logger.Error. A bare error passed as the first field is
// rewritten to the standard error attribute so handlers can extract its
// stack trace.
func (s *slogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			args := append([]any{ErrAttr(err)}, fields[1:]...)
			s.l.Error(msg, args...)
			return
		}
	}
	s.l.Error(msg, fields...)
}

// With implements Logger.With.
func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}
