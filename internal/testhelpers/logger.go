package testhelpers

import (
	"github.com/myrjola/theoffice/internal/logging"
	"io"
	"log/slog"
)

// NewLogger creates a debug level text logger with the given log sink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	logger, err := logging.NewLogger(logSink, "debug", "text")
	if err != nil {
		// Both arguments are constants known to be valid.
		panic(err)
	}
	return logger
}
