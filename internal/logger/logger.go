// Package logger provides verbose logging for pizza-cli.
// When verbose mode is enabled via the --verbose flag, debug messages
// are written to stderr to show how the calculator derived its numbers.
//
// Output goes through zerolog: a plain console format by default, or one
// JSON object per line when JSON mode is enabled.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu       sync.RWMutex
	verbose  bool
	jsonMode bool
	output   io.Writer = os.Stderr
	zl                 = build()
)

// build creates the zerolog logger for the current settings (caller must hold lock).
func build() zerolog.Logger {
	var w io.Writer = output
	if !jsonMode {
		w = zerolog.ConsoleWriter{
			Out:          output,
			NoColor:      true,
			PartsExclude: []string{zerolog.TimestampFieldName},
		}
	}

	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}

	l := zerolog.New(w).Level(level)
	if jsonMode {
		l = l.With().Timestamp().Logger()
	}
	return l
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	zl = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetJSON switches between console and JSON output.
func SetJSON(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonMode = enabled
	zl = build()
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	zl = build()
}

// Debug logs a message at debug level if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	zl.Debug().Msgf(format, args...)
}

// DebugFields logs a message with structured fields if verbose mode is enabled.
func DebugFields(msg string, fields map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	zl.Debug().Fields(fields).Msg(msg)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	if jsonMode {
		zl.Info().Str("section", name).Msg("section")
		return
	}
	fmt.Fprintf(output, "\n=== %s ===\n", name)
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	zl.Info().Msgf(format, args...)
}

// Warn logs a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	zl.Warn().Msgf(format, args...)
}
