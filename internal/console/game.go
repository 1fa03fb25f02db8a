// Package console is the text menu around a play session. It reads one selection per iteration and dispatches it to
// the session's structures.
package console

import (
	"context"
	"fmt"
	"github.com/myrjola/theoffice/internal/dialogue"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/session"
	"io"
	"log/slog"
	"strings"
)

const (
	welcome  = "Welcome to The Office Game!\n"
	farewell = "Thank you for playing The Office Game!\n"
)

// Game runs the menu for one session.
type Game struct {
	session *session.Session
	in      *lineReader
	out     io.Writer
	logger  *slog.Logger
}

// NewGame reads the player's input from in and writes the game to out.
func NewGame(s *session.Session, in io.Reader, out io.Writer, logger *slog.Logger) *Game {
	return &Game{
		session: s,
		in:      newLineReader(in),
		out:     out,
		logger:  logger.With("source", "Game"),
	}
}

// Run shows the menu until the player exits or the input ends. The session is closed before Run returns, on every
// path. The farewell is printed unless a fatal error, such as [arena.ErrExhausted], ended the game.
func (g *Game) Run(ctx context.Context) error {
	sessionCtx := g.session.Context(ctx)
	err := g.loop(sessionCtx)
	if closeErr := g.session.Close(ctx); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		g.logger.ErrorContext(sessionCtx, "game ended", errors.SlogError(err))
		return err
	}
	return g.write(farewell)
}

func (g *Game) loop(ctx context.Context) error {
	if err := g.write(welcome); err != nil {
		return err
	}
	for {
		if err := g.write(menu()); err != nil {
			return err
		}
		line, err := g.in.ReadLine()
		if errors.Is(err, io.EOF) {
			g.logger.InfoContext(ctx, "input closed")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read command")
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			g.logger.DebugContext(ctx, "invalid command", errors.SlogError(err))
			if err = g.write("Invalid choice! Please try again.\n"); err != nil {
				return err
			}
			continue
		}
		if cmd == CommandExit {
			return nil
		}

		g.logger.DebugContext(ctx, "dispatch", slog.String("command", cmd.String()))
		if err = g.dispatch(ctx, cmd); errors.Is(err, io.EOF) {
			g.logger.InfoContext(ctx, "input closed", slog.String("command", cmd.String()))
			return nil
		} else if err != nil {
			return errors.Wrap(err, "dispatch", slog.String("command", cmd.String()))
		}
	}
}

func (g *Game) dispatch(ctx context.Context, cmd Command) error {
	s := g.session
	switch cmd {
	case CommandNavigate:
		state, err := dialogue.Navigate(s.Dialogue, g.in, g.out)
		g.logger.DebugContext(ctx, "dialogue finished", slog.String("state", state.String()))
		return err
	case CommandShowTasks:
		return s.Tasks.Display(g.out)
	case CommandShowInventory:
		return s.Inventory.Show(g.out)
	case CommandShowChoices:
		return s.Choices.Display(g.out)
	case CommandAddItem:
		return g.addItem(ctx)
	case CommandCompleteTask:
		return s.Tasks.Complete(g.out)
	case CommandExit:
		return nil
	default:
		return errors.Wrap(ErrInvalidSelector, "dispatch", slog.Int("command", int(cmd)))
	}
}

func (g *Game) addItem(ctx context.Context) error {
	if err := g.write("Enter the item name to add: "); err != nil {
		return err
	}
	name, err := g.in.ReadLine()
	if err != nil {
		return errors.Wrap(err, "read item name")
	}
	if _, err = g.session.Inventory.Add(name); err != nil {
		return err
	}
	g.logger.DebugContext(ctx, "item added", slog.Int("items", g.session.Inventory.Len()))
	return nil
}

func (g *Game) write(s string) error {
	if _, err := io.WriteString(g.out, s); err != nil {
		return errors.Wrap(err, "write console")
	}
	return nil
}

func menu() string {
	var b strings.Builder
	b.WriteString("\nWhat would you like to do?\n")
	for _, cmd := range Commands {
		_, _ = fmt.Fprintf(&b, "%d. %s\n", int(cmd), cmd)
	}
	b.WriteString("Enter your choice: ")
	return b.String()
}
