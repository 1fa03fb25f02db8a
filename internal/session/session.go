// Package session owns one instance of every game structure for the duration of a play session.
package session

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/theoffice/internal/choices"
	"github.com/myrjola/theoffice/internal/dialogue"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/inventory"
	"github.com/myrjola/theoffice/internal/logging"
	"github.com/myrjola/theoffice/internal/tasks"
	"log/slog"
)

// InitialTasks are queued when a session starts.
var InitialTasks = []string{ //nolint:gochecknoglobals // fixed game content
	"Complete the sales report",
	"Check with Jim about the prank",
}

// Config sizes the structures of a session.
type Config struct {
	// MaxNodes caps every structure. Zero means unbounded.
	MaxNodes int
}

// Session owns the inventory, choices, tasks and dialogue of one game.
type Session struct {
	ID        string
	Inventory *inventory.List
	Choices   *choices.Stack
	Tasks     *tasks.Queue
	Dialogue  *dialogue.Tree

	logger *slog.Logger
	closed bool
}

// New creates the structures, queues the initial tasks and builds the dialogue tree. On failure everything allocated
// so far is released again.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Session, error) {
	id := uuid.NewString()
	s := &Session{
		ID:        id,
		Inventory: inventory.New(cfg.MaxNodes),
		Choices:   choices.New(cfg.MaxNodes),
		Tasks:     tasks.New(cfg.MaxNodes),
		Dialogue:  nil,
		logger:    logger.With("source", "Session"),
		closed:    false,
	}

	for _, description := range InitialTasks {
		if _, _, err := s.Tasks.Enqueue(description); err != nil {
			return nil, errors.Join(errors.Wrap(err, "seed tasks"), s.Close(ctx))
		}
	}

	tree, err := dialogue.Build(cfg.MaxNodes)
	if err != nil {
		return nil, errors.Join(errors.Wrap(err, "build dialogue"), s.Close(ctx))
	}
	s.Dialogue = tree

	s.logger.DebugContext(s.Context(ctx), "session started", slog.Int("maxNodes", cfg.MaxNodes))
	return s, nil
}

// Context returns ctx enriched with the session ID for logging.
func (s *Session) Context(ctx context.Context) context.Context {
	return logging.WithAttrs(ctx, slog.String("session_id", s.ID))
}

// Close releases the inventory, tasks, dialogue and choices in that order. Only the first call does anything.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true

	errs := []error{s.Inventory.Free(), s.Tasks.Free()}
	if s.Dialogue != nil {
		errs = append(errs, s.Dialogue.Free())
	}
	errs = append(errs, s.Choices.Free())

	if err := errors.Join(errs...); err != nil {
		err = errors.Wrap(err, "close session")
		s.logger.ErrorContext(s.Context(ctx), "teardown failed", errors.SlogError(err))
		return err
	}
	s.logger.DebugContext(s.Context(ctx), "session closed", slog.Int("leaks", s.Leaks()))
	return nil
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Leaks returns the number of nodes across all structures that have not been released.
func (s *Session) Leaks() int {
	n := s.Inventory.Live() + s.Choices.Live() + s.Tasks.Live()
	if s.Dialogue != nil {
		n += s.Dialogue.Live()
	}
	return n
}
