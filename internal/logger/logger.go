package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns the application logger: JSON records at info level on stdout.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter builds the same logger against an arbitrary sink. Tests use
// it to capture output.
func NewWithWriter(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
