package filedrive

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger. Drives are silent by default — the error
// policy is "propagate, never log-and-swallow" — so the zero
// configuration discards everything. Inject a handler to observe
// recovery events at debug level.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler
// discards all output.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text logs
// to stderr. level sets the minimum log level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// LogRecovery records a recovered missing-parent-directory condition.
func (l *Logger) LogRecovery(ctx context.Context, op, dir string) {
	l.DebugContext(ctx, "created missing parent directory",
		"op", op,
		"dir", dir,
	)
}
