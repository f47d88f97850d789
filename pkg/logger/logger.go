// Package logger provides the process-wide structured logger, backed by
// zerolog. Initialise once at startup with Init, then retrieve the root
// logger with Get or a component-scoped child with For.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "kachra-engagement"

var (
	mu          sync.Mutex
	instance    zerolog.Logger
	initialized bool
)

// Init builds the root logger. level is one of trace, debug, info, warn,
// error; anything else falls back to info. pretty switches from JSON to
// coloured console output, intended for local development only.
//
// Calling Init again replaces the root logger, which tests rely on.
func Init(level string, pretty bool, out io.Writer) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	if out == nil {
		out = os.Stdout
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	instance = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	initialized = true

	return instance
}

// Get returns the root logger. Panics if Init has not been called yet.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// For returns a child of the root logger tagged with a component name,
// so log lines can be filtered per subsystem (session, fleet, dispatch).
func For(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}

// Reset tears down the root logger so the next Init call rebuilds it.
// Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.Logger{}
	initialized = false
}
