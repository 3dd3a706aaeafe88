// Package debug provides opt-in trace logging using log/slog.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

var (
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled bool
	mu      sync.RWMutex
)

// Init turns trace logging on or off. Enabled logs are written to w, or to
// os.Stderr when w is nil.
func Init(enable bool, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	if !enable {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	if w == nil {
		w = os.Stderr
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Enabled returns whether debug logging is enabled
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Dump logs v in go-spew form. Nothing is formatted while logging is off.
func Dump(msg string, v any) {
	if !Enabled() {
		return
	}
	Logger().Debug(msg, "value", spew.Sdump(v))
}

// Logger returns the underlying slog.Logger instance
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
