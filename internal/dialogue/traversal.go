package dialogue

import (
	"fmt"
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInvalidSelector is returned for answers outside the set a prompt accepts. It is never fatal.
var ErrInvalidSelector = errors.NewSentinel("invalid selector")

// Selector is the player's binary answer.
type Selector int

const (
	// Invalid is what ParseSelector returns alongside an error. Stepping with it aborts the traversal.
	Invalid Selector = 0
	Yes     Selector = 1
	No      Selector = 2
)

// ParseSelector reads "1" as Yes and "2" as No. Surrounding whitespace is ignored.
func ParseSelector(s string) (Selector, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || (Selector(n) != Yes && Selector(n) != No) {
		return Invalid, errors.Wrap(ErrInvalidSelector, "parse selector", slog.String("input", s))
	}
	return Selector(n), nil
}

// State of a traversal. Ended and Aborted are terminal.
type State int

const (
	AtNode State = iota
	Ended
	Aborted
)

func (s State) String() string {
	switch s {
	case AtNode:
		return "at node"
	case Ended:
		return "ended"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Traversal walks a tree from the root. It keeps no state between traversals and never mutates the tree.
type Traversal struct {
	tree    *Tree
	current arena.Ref
	state   State
}

// Begin starts a traversal at the root. An empty tree ends immediately.
func (t *Tree) Begin() *Traversal {
	tr := &Traversal{tree: t, current: t.root, state: AtNode}
	if t.nodes.Get(t.root) == nil {
		tr.current = arena.Nil
		tr.state = Ended
	}
	return tr
}

// Step moves along the branch chosen by sel. Moving to an absent branch ends the traversal and any selector other
// than Yes or No aborts it. Terminal states don't change.
func (tr *Traversal) Step(sel Selector) State {
	if tr.state != AtNode {
		return tr.state
	}
	n, _ := tr.tree.Node(tr.current)
	switch sel {
	case Yes:
		tr.current = n.Yes
	case No:
		tr.current = n.No
	default:
		tr.state = Aborted
		return tr.state
	}
	if tr.current == arena.Nil {
		tr.state = Ended
	}
	return tr.state
}

// State returns the current state.
func (tr *Traversal) State() State {
	return tr.state
}

// Current returns the node the traversal is at. ok is false in terminal states.
func (tr *Traversal) Current() (Node, bool) {
	if tr.state != AtNode {
		return Node{Ref: arena.Nil, Speaker: "", Line: "", Yes: arena.Nil, No: arena.Nil}, false
	}
	return tr.tree.Node(tr.current)
}

// LineReader supplies the player's answers one line at a time.
type LineReader interface {
	ReadLine() (string, error)
}

// Navigate runs an interactive traversal. Each node's speaker and line are written to w before asking for the next
// answer. It returns the terminal state reached. An error is only returned when reading or writing fails, e.g., when
// in is exhausted.
func Navigate(t *Tree, in LineReader, w io.Writer) (State, error) {
	tr := t.Begin()
	for tr.State() == AtNode {
		n, _ := tr.Current()
		if _, err := fmt.Fprintf(w, "%s says: \"%s\"\nChoose (1) Yes or (2) No: ", n.Speaker, n.Line); err != nil {
			return tr.State(), errors.Wrap(err, "write dialogue line")
		}
		line, err := in.ReadLine()
		if err != nil {
			return tr.State(), errors.Wrap(err, "read selector", slog.String("speaker", n.Speaker))
		}
		sel, _ := ParseSelector(line)
		tr.Step(sel)
	}

	msg := "Dialogue ended.\n"
	if tr.State() == Aborted {
		msg = "Invalid choice.\n"
	}
	if _, err := io.WriteString(w, msg); err != nil {
		return tr.State(), errors.Wrap(err, "write dialogue outcome")
	}
	return tr.State(), nil
}
