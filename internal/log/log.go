// Package log provides the shared debug logger. Normal command output
// goes straight to stdout/stderr; this logger only records diagnostics
// when WALLET_DEBUG is set, so it never interferes with the TUI.
package log

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger is a no-op unless Init enables file logging.
var Logger = zerolog.Nop()

// Init enables debug logging to a file under the given directory when
// WALLET_DEBUG is set. Failures to open the log file are ignored; the
// logger stays a no-op.
func Init(stateDir string) {
	if os.Getenv("WALLET_DEBUG") == "" {
		return
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(stateDir, "debug.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
