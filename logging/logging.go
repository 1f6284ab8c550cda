// SPDX-License-Identifier: MIT
// Package: bspmatch/logging
//
// Package logging wraps log/slog with the process-scoped context the
// engine and cmd/bspmatch log with: every record carries
// which process emitted it, so a merged multi-process log stays
// readable. It plays the same role a leveled logger
// (Debug/Info/Warn/Error plus a WithField-style attribute attach) gives
// other CLI tools in this style — this one is a thin slog.Logger wrapper
// rather than a bespoke interface, since nothing here needs anything
// slog doesn't already provide.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the structured logger threaded through engine.Config. The
// zero value is not usable; construct one with New or Discard.
type Logger struct {
	base *slog.Logger
}

// New returns a Logger writing leveled, human-readable text to w at or
// above minLevel. Passing os.Stderr and slog.LevelInfo matches
// cmd/bspmatch's default.
func New(w *os.File, minLevel slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: minLevel})
	return &Logger{base: slog.New(handler)}
}

// Discard returns a Logger that drops every record, for tests and for
// any caller that passes a nil *logging.Logger through engine.Config
// (engine treats nil the same way, but graphgen/phase tests that build
// a Logger directly want this instead of nil-checking everywhere).
func Discard() *Logger {
	return &Logger{base: slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}

// WithProcess returns a Logger that tags every subsequent record with
// this process's index, so a merged log from several emulator
// goroutines (or, eventually, several real processes) can be filtered
// or sorted per process.
func (l *Logger) WithProcess(pid int) *Logger {
	return &Logger{base: l.base.With(slog.Int("pid", pid))}
}

// WithRunID returns a Logger that tags every subsequent record with the
// id of the run it belongs to, so logs from two separate invocations
// interleaved on the same stderr (or shipped to the same aggregator)
// can be told apart. A zero-value id is tagged as-is; callers that
// don't have one can skip calling WithRunID.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{base: l.base.With(slog.String("run_id", id))}
}

// Debug logs at debug level with structured key-value attributes.
func (l *Logger) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }

// Info logs at info level with structured key-value attributes.
func (l *Logger) Info(msg string, args ...any) { l.base.Info(msg, args...) }

// Warn logs at warn level with structured key-value attributes.
func (l *Logger) Warn(msg string, args ...any) { l.base.Warn(msg, args...) }

// Error logs at error level with structured key-value attributes.
// cmd/bspmatch calls this before returning a failed run's error.
func (l *Logger) Error(msg string, args ...any) { l.base.Error(msg, args...) }

// Enabled reports whether a record at level would be emitted, letting
// a hot path (the per-superstep sweep) skip building attributes it
// would otherwise discard.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.base.Enabled(ctx, level)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
