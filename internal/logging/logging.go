// Package logging is the small slog-backed logger used by the ecelgamal command.
// The library itself does not log.
package logging

import (
	"io"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is the subset of slog used by the command line tool.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// New returns a text Logger writing to w. Debug messages are only written when
// verbose is set.
func New(w io.Writer, verbose bool) Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{logger: slog.New(handler)}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted marks an attribute whose value (a private scalar, a passphrase) was
// intentionally left out of the log.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}
