package main

import (
	"context"
	"github.com/myrjola/theoffice/internal/console"
	"github.com/myrjola/theoffice/internal/envstruct"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/logging"
	"github.com/myrjola/theoffice/internal/session"
	"io"
	"log/slog"
)

const logLevelEnv = "OFFICE_LOG_LEVEL"

type config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"OFFICE_LOG_LEVEL" envDefault:"warn"`
	// LogFormat is text or json.
	LogFormat string `env:"OFFICE_LOG_FORMAT" envDefault:"text"`
	// MaxNodes caps the inventory, choices, tasks and dialogue each. Zero means unbounded.
	MaxNodes int `env:"OFFICE_MAX_NODES" envDefault:"1024"`
}

// run plays one game on stdin and stdout. Logs are written to logSink so that they don't mix with the game.
func run(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	logSink io.Writer,
	lookupEnv func(string) (string, bool),
) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	logger, err := logging.NewLogger(logSink, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return errors.Wrap(err, "new logger")
	}

	s, err := session.New(ctx, session.Config{MaxNodes: cfg.MaxNodes}, logger)
	if err != nil {
		logger.ErrorContext(ctx, "start session", errors.SlogError(err))
		return errors.Wrap(err, "start session")
	}
	logger.InfoContext(s.Context(ctx), "starting game",
		slog.Int("maxNodes", cfg.MaxNodes), slog.String("logLevel", cfg.LogLevel))

	if err = console.NewGame(s, stdin, stdout, logger).Run(ctx); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
