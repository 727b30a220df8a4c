package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	// Output receives JSON log lines. Defaults to os.Stderr so stdout stays
	// reserved for results.
	Output io.Writer
	Debug  bool
}

var (
	mu       sync.RWMutex
	global   = slog.New(slog.NewJSONHandler(io.Discard, nil))
	ready    bool
	initedAt time.Time
)

// Setup installs the process-wide logger. Without Debug the logger discards
// everything; the tool is silent unless asked.
func Setup(cfg Config) (func() error, error) {
	if !cfg.Debug {
		setDiscard()
		return func() error { return nil }, nil
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {

			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	ready = true
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	cleanup := func() error {
		setDiscard()
		return nil
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	ready = false
	initedAt = time.Time{}
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if !ready {
		return errors.New("logger not initialized")
	}
	return nil
}
