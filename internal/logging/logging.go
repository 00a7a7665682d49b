package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w.
// Debug enables per-line diagnostics; otherwise only warnings and errors are shown.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
