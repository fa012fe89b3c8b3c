// log.go adapts xxsc0529-genai-toolbox's internal/log.StdLogger pattern: a
// small logging interface over log/slog, so the core's "logged at warn"
// requirements (§4.1, §4.3, §4.4, §4.5) don't force a dependency on any
// particular logging framework while still avoiding a hand-rolled
// structured-logging shim. The teacher itself logs nothing; this is
// enrichment from the rest of the pack (SPEC_FULL.md AMBIENT STACK).
package mcp

import (
	"log/slog"
	"os"
)

// Logger is the minimal structured-logging surface the core depends on.
type Logger interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// NopLogger discards everything. It is the Peer default so embedding
// applications aren't forced to wire a logger to use the core.
type NopLogger struct{}

func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Debug(string, ...any) {}

// SlogLogger adapts an *slog.Logger to Logger.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l, or a default slog.Logger writing to stderr at the
// given level if l is nil.
func NewSlogLogger(l *slog.Logger, level slog.Level) *SlogLogger {
	if l == nil {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		l = slog.New(h)
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *SlogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
