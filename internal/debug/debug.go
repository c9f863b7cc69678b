// Package debug provides an env-gated debug logger. Output goes to a rotating
// file so long batch runs cannot fill the disk, and never to stdout, which is
// reserved for command output.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once    sync.Once
	logger  *log.Logger
	enabled bool
)

func setup() {
	if os.Getenv("FLORA_DEBUG") == "" {
		return
	}
	enabled = true

	path := os.Getenv("FLORA_DEBUG_LOG")
	if path == "" {
		path = filepath.Join(os.TempDir(), "flora-debug.log")
	}

	logger = log.New(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
	}, "", log.LstdFlags|log.Lmicroseconds)
}

// Enabled reports whether debug logging is on (FLORA_DEBUG set).
func Enabled() bool {
	once.Do(setup)
	return enabled
}

// Logf writes a formatted line to the debug log when enabled, otherwise does
// nothing.
func Logf(format string, args ...any) {
	once.Do(setup)
	if !enabled || logger == nil {
		return
	}
	logger.Output(2, fmt.Sprintf(format, args...)) // nolint:errcheck // best-effort
}
