// Package log provides a structured logging interface for econgo estimation
// and reporting operations.
//
// This package defines a minimal, slog-compatible logging interface that allows
// for flexible implementation switching while providing regression-specific
// structured logging capabilities. The interface is designed to integrate
// seamlessly with Go's standard log/slog package and popular logging libraries
// like zerolog, logrus, and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Estimation-specific structured attributes (operations, sample shapes, fit statistics)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.Default().With(
//	    log.ModelNameKey, "Logit",
//	    log.DepVarKey, "switch",
//	)
//	logger.Info("model fitting in progress",
//	    log.OperationKey, log.OperationFit,
//	    log.ObservationsKey, 3020,
//	    log.RegressorsKey, 4,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// This interface provides the core logging methods with structured field support,
// allowing for rich contextual information to be included with log messages.
// It's designed to be implementation-agnostic, enabling easy switching between
// different logging backends while maintaining a consistent API.
//
// The interface supports method chaining through the With method, allowing
// for creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs are typically used for detailed diagnostic information
	// such as per-iteration log-likelihood values.
	//
	// Example:
	//   logger.Debug("iteration complete",
	//       log.IterationsKey, 7,
	//       log.LogLikelihoodKey, -1953.913,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	// Info logs are used for general operational information about
	// the estimation flow.
	//
	// Example:
	//   logger.Info("model fitted",
	//       log.DurationMsKey, 12,
	//       log.PseudoR2Key, 0.071,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warning logs indicate potentially problematic situations that
	// don't prevent estimation from continuing.
	//
	// Example:
	//   logger.Warn("many observations dropped during alignment",
	//       log.DroppedRowsKey, 512,
	//   )
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// Error logs indicate error conditions that should be investigated.
	// If an error value is provided as the first field, stack trace
	// information may be automatically included.
	//
	// Example:
	//   logger.Error("model fitting failed",
	//       err,
	//       log.OperationKey, log.OperationFit,
	//       log.ObservationsKey, 32,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	// This method enables creation of contextual loggers that automatically
	// include common fields in all subsequent log messages.
	//
	// Example:
	//   modelLogger := logger.With(
	//       log.ModelNameKey, "Logit",
	//       log.DepVarKey, "vs",
	//   )
	//   modelLogger.Info("model fitting in progress")  // Includes model context
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// This method can be used to avoid expensive operations when constructing
	// log messages that won't be emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
// This type allows for level-based filtering of log messages.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
