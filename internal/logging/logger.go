package logging

import (
	"github.com/myrjola/theoffice/internal/errors"
	"io"
	"log/slog"
	"strings"
)

var ErrUnknownFormat = errors.NewSentinel("unknown log format")

// NewLogger builds a [ContextHandler] backed logger writing to logSink.
//
// level is parsed with [slog.Level.UnmarshalText], e.g. "debug" or "WARN". format is either "text" or "json".
func NewLogger(logSink io.Writer, level string, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrap(err, "parse log level", slog.String("level", level))
	}

	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       lvl,
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(logSink, opts)
	case "json":
		handler = slog.NewJSONHandler(logSink, opts)
	default:
		return nil, errors.Wrap(ErrUnknownFormat, "select log handler", slog.String("format", format))
	}

	return slog.New(NewContextHandler(handler)), nil
}
