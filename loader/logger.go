package loader

import (
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// Logger is the structured logging surface the loader emits through.
// The compiler core itself never logs; only loading and installation do.
type Logger interface {
	With(args ...any) Logger
	Debug(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type slogLogger struct {
	*slog.Logger
}

// NewLogger wraps a slog.Logger into the loader's Logger surface.
func NewLogger(l *slog.Logger) Logger {
	return &slogLogger{l}
}

// NewTestLogger routes loader logs through t.Log.
func NewTestLogger(t *testing.T, opt ...slogt.Option) Logger {
	return &slogLogger{slogt.New(t, opt...)}
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{l.Logger.With(args...)}
}
