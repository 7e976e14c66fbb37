package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/spool/internal/logging"
)

// createLogger configures the command logger. In debug mode it writes to
// Stderr so trace output on Stdout stays clean.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}
