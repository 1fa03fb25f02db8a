package console

import (
	"github.com/myrjola/theoffice/internal/dialogue"
	"github.com/myrjola/theoffice/internal/errors"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInvalidSelector is shared with the dialogue prompt so that a single errors.Is matches both.
var ErrInvalidSelector = dialogue.ErrInvalidSelector

// Command is a main menu entry. The values are what the player types.
type Command int

const (
	CommandNavigate Command = iota + 1
	CommandShowTasks
	CommandShowInventory
	CommandShowChoices
	CommandAddItem
	CommandCompleteTask
	CommandExit
)

// Commands lists the menu in display order.
var Commands = []Command{ //nolint:gochecknoglobals // fixed menu
	CommandNavigate,
	CommandShowTasks,
	CommandShowInventory,
	CommandShowChoices,
	CommandAddItem,
	CommandCompleteTask,
	CommandExit,
}

func (c Command) String() string {
	switch c {
	case CommandNavigate:
		return "Navigate Michael's Dialogue"
	case CommandShowTasks:
		return "Check Tasks Queue"
	case CommandShowInventory:
		return "Check Inventory"
	case CommandShowChoices:
		return "View Choices Stack"
	case CommandAddItem:
		return "Add Item to Inventory"
	case CommandCompleteTask:
		return "Complete a Task"
	case CommandExit:
		return "Exit"
	default:
		return "Command(" + strconv.Itoa(int(c)) + ")"
	}
}

// ParseCommand reads a menu selection. Anything but an integer between 1 and 7 is an [ErrInvalidSelector].
func ParseCommand(s string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(CommandNavigate) || n > int(CommandExit) {
		return 0, errors.Wrap(ErrInvalidSelector, "parse command", slog.String("input", s))
	}
	return Command(n), nil
}
