package framer

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// logger receives framer's advisory diagnostics: unsupported interpolation
// values, misuse of the animation lifecycle and debug-mode layout checks.
// Nothing framer logs is fatal.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "framer",
	Level:  log.WarnLevel,
})

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetLogger replaces the package logger. Passing nil silences
// diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	logger = l
}

var (
	warnedMu sync.Mutex
	warned   = map[string]bool{}
)

// warnOnce logs msg the first time key is seen.
func warnOnce(key, msg string, keyvals ...any) {
	warnedMu.Lock()
	seen := warned[key]
	warned[key] = true
	warnedMu.Unlock()
	if !seen {
		logger.Warn(msg, keyvals...)
	}
}
