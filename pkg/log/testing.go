// Package log provides testing utilities for structured logging.
//
// This file contains an in-memory Logger implementation used by the test
// suites across econgo. Log records are captured as JSON lines in a buffer
// so tests can assert on messages and structured fields without touching
// the process-wide slog default.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// TestLogger is a Logger that records every entry in an in-memory buffer.
// Loggers derived via With share the parent's buffer, so assertions made on
// the root logger observe entries written by derived loggers as well. All
// methods are safe for concurrent use; FitModels logs from worker
// goroutines.
type TestLogger struct {
	mu      *sync.Mutex
	buffer  *bytes.Buffer
	level   Level
	context []any
}

var (
	_ Logger         = (*TestLogger)(nil)
	_ LoggerProvider = (*TestLoggerProvider)(nil)
)

// NewTestLogger creates a TestLogger capturing entries at or above level.
// The returned buffer holds the raw JSON-line output.
//
// Example:
//
//	logger, buf := log.NewTestLogger(log.LevelDebug)
//	logger.Info("test message", "key", "value")
//	// buf.String() now contains the JSON entry
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		mu:     &sync.Mutex{},
		buffer: buffer,
		level:  level,
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	t.record(LevelDebug, msg, fields)
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	t.record(LevelInfo, msg, fields)
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	t.record(LevelWarn, msg, fields)
}

// Error implements Logger.Error. A bare error passed as the first field is
// recorded under the standard error attribute, mirroring the slog-backed
// logger.
func (t *TestLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttrKey, err}, fields[1:]...)
		}
	}
	t.record(LevelError, msg, fields)
}

// With implements Logger.With. The derived logger writes to the same buffer
// as its parent.
func (t *TestLogger) With(fields ...any) Logger {
	context := make([]any, 0, len(t.context)+len(fields))
	context = append(context, t.context...)
	context = append(context, fields...)
	return &TestLogger{
		mu:      t.mu,
		buffer:  t.buffer,
		level:   t.level,
		context: context,
	}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(ctx context.Context, level Level) bool {
	return t.level <= level
}

// record appends one JSON entry to the buffer if level passes the filter.
func (t *TestLogger) record(level Level, msg string, fields []any) {
	if level < t.level {
		return
	}

	entry := map[string]interface{}{
		"level":   level.String(),
		"message": msg,
	}
	addPairs(entry, t.context)
	addPairs(entry, fields)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Write(data)
	t.buffer.WriteByte('\n')
}

// addPairs merges key-value pairs into entry. Errors are stored as their
// message string so entries stay JSON-comparable.
func addPairs(entry map[string]interface{}, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if err, ok := kv[i+1].(error); ok {
			entry[key] = err.Error()
		} else {
			entry[key] = kv[i+1]
		}
	}
}

// GetLogEntries parses the captured output into one map per log entry.
//
// Example:
//
//	entries, err := logger.GetLogEntries()
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if entries[0]["level"] != "ERROR" {
//	    t.Errorf("unexpected level %v", entries[0]["level"])
//	}
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	t.mu.Lock()
	raw := t.buffer.String()
	t.mu.Unlock()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage reports whether any captured entry contains message as a
// substring.
func (t *TestLogger) ContainsMessage(message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Contains(t.buffer.String(), message)
}

// ContainsField reports whether any captured entry carries the field key
// with the given value. Values are compared after the JSON round trip, so
// numbers must be given as float64.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if got, ok := entry[key]; ok && got == value {
			return true
		}
	}
	return false
}

// TestLoggerProvider implements LoggerProvider on top of a TestLogger.
type TestLoggerProvider struct {
	root   *TestLogger
	buffer *bytes.Buffer
}

// NewTestLoggerProvider creates a provider whose loggers capture entries at
// or above level. The returned buffer holds the combined output of every
// logger the provider hands out.
func NewTestLoggerProvider(level Level) (*TestLoggerProvider, *bytes.Buffer) {
	root, buffer := NewTestLogger(level)
	return &TestLoggerProvider{
		root:   root,
		buffer: buffer,
	}, buffer
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *TestLoggerProvider) GetLogger() Logger {
	return p.root
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName. The name
// is attached as the component attribute on every entry.
func (p *TestLoggerProvider) GetLoggerWithName(name string) Logger {
	return p.root.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel. It affects loggers obtained
// after the call; already derived loggers keep their level.
func (p *TestLoggerProvider) SetLevel(level Level) {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()
	p.root.level = level
}
