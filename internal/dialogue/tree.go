// Package dialogue holds the binary dialogue tree and the state machine that walks it.
//
// Every node has a Yes and a No branch, each absent or a child owned by that node alone. The tree is built once and
// is read-only while it is traversed.
package dialogue

import (
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/textutil"
	"log/slog"
)

// Longest speaker name and line kept, in runes.
const (
	MaxSpeakerLength = 29
	MaxLineLength    = 99
)

// Errors returned while linking nodes.
var (
	ErrUnknownNode = errors.NewSentinel("unknown dialogue node")
	ErrBranchTaken = errors.NewSentinel("dialogue branch already set")
	ErrNotDetached = errors.NewSentinel("dialogue node already has a parent")
)

type node struct {
	speaker  string
	line     string
	yes      arena.Ref
	no       arena.Ref
	attached bool
}

// Node is a read-only view of a dialogue node.
type Node struct {
	Ref     arena.Ref
	Speaker string
	Line    string
	Yes     arena.Ref
	No      arena.Ref
}

// Tree owns its nodes. Nodes are added detached and linked with SetRoot, SetYes and SetNo.
type Tree struct {
	nodes *arena.Arena[node]
	root  arena.Ref
}

// NewTree creates an empty tree holding at most capacity nodes, zero meaning unbounded.
func NewTree(capacity int) *Tree {
	return &Tree{
		nodes: arena.New[node](capacity),
		root:  arena.Nil,
	}
}

// Build creates the meeting invitation from Michael with one reply for each answer.
func Build(capacity int) (*Tree, error) {
	t := NewTree(capacity)

	steps := []struct {
		speaker string
		line    string
		link    func(parent, child arena.Ref) error
	}{
		{speaker: "Michael", line: "Do you want to join our team meeting?", link: nil},
		{speaker: "Michael - Yes", line: "Great! Let's discuss new ideas.", link: t.SetYes},
		{speaker: "Michael - No", line: "Well, you miss 100% of the meetings you don't attend.", link: t.SetNo},
	}

	for _, step := range steps {
		ref, err := t.AddNode(step.speaker, step.line)
		if err != nil {
			return nil, errors.Join(errors.Wrap(err, "build dialogue"), t.Free())
		}
		if step.link == nil {
			err = t.SetRoot(ref)
		} else {
			err = step.link(t.root, ref)
		}
		if err != nil {
			return nil, errors.Join(errors.Wrap(err, "link dialogue"), t.Free())
		}
	}

	return t, nil
}

// AddNode stores a detached node. Speaker and line are truncated to their maximum lengths.
func (t *Tree) AddNode(speaker, line string) (arena.Ref, error) {
	ref, err := t.nodes.Alloc(node{
		speaker:  textutil.Truncate(speaker, MaxSpeakerLength),
		line:     textutil.Truncate(line, MaxLineLength),
		yes:      arena.Nil,
		no:       arena.Nil,
		attached: false,
	})
	if err != nil {
		return arena.Nil, errors.Wrap(err, "add dialogue node", slog.String("speaker", speaker))
	}
	return ref, nil
}

// SetRoot makes a detached node the root. An existing root is kept as a detached node.
func (t *Tree) SetRoot(ref arena.Ref) error {
	n := t.nodes.Get(ref)
	if n == nil {
		return errors.Wrap(ErrUnknownNode, "set root", slog.Int("ref", int(ref)))
	}
	if n.attached {
		return errors.Wrap(ErrNotDetached, "set root", slog.Int("ref", int(ref)))
	}
	if old := t.nodes.Get(t.root); old != nil {
		old.attached = false
	}
	n.attached = true
	t.root = ref
	return nil
}

// SetYes attaches child as the Yes branch of parent.
func (t *Tree) SetYes(parent, child arena.Ref) error {
	return t.link(parent, child, true)
}

// SetNo attaches child as the No branch of parent.
func (t *Tree) SetNo(parent, child arena.Ref) error {
	return t.link(parent, child, false)
}

func (t *Tree) link(parent, child arena.Ref, yes bool) error {
	attrs := []slog.Attr{slog.Int("parent", int(parent)), slog.Int("child", int(child)), slog.Bool("yes", yes)}
	p := t.nodes.Get(parent)
	c := t.nodes.Get(child)
	if p == nil || c == nil {
		return errors.Wrap(ErrUnknownNode, "link dialogue node", attrs...)
	}
	if c.attached || parent == child {
		return errors.Wrap(ErrNotDetached, "link dialogue node", attrs...)
	}
	branch := &p.no
	if yes {
		branch = &p.yes
	}
	if *branch != arena.Nil {
		return errors.Wrap(ErrBranchTaken, "link dialogue node", attrs...)
	}
	*branch = child
	c.attached = true
	return nil
}

// Root returns the root node ref or [arena.Nil] for an empty tree.
func (t *Tree) Root() arena.Ref {
	return t.root
}

// Node returns a view of the node at ref.
func (t *Tree) Node(ref arena.Ref) (Node, bool) {
	n := t.nodes.Get(ref)
	if n == nil {
		return Node{Ref: arena.Nil, Speaker: "", Line: "", Yes: arena.Nil, No: arena.Nil}, false
	}
	return Node{Ref: ref, Speaker: n.speaker, Line: n.line, Yes: n.yes, No: n.no}, true
}

// Free releases the tree in post-order: Yes subtree, No subtree, then the node. Detached nodes that were never linked
// are released too. Free must not be called while a traversal is in progress.
func (t *Tree) Free() error {
	errs := []error{t.free(t.root)}
	t.root = arena.Nil
	for _, ref := range t.nodes.LiveRefs() {
		if _, err := t.nodes.Release(ref); err != nil {
			errs = append(errs, errors.Wrap(err, "free detached dialogue node"))
		}
	}
	return errors.Join(errs...)
}

func (t *Tree) free(ref arena.Ref) error {
	n := t.nodes.Get(ref)
	if n == nil {
		return nil
	}
	yes, no := n.yes, n.no
	errs := []error{t.free(yes), t.free(no)}
	if _, err := t.nodes.Release(ref); err != nil {
		errs = append(errs, errors.Wrap(err, "free dialogue node"))
	}
	return errors.Join(errs...)
}

// Live returns the number of nodes not yet released.
func (t *Tree) Live() int {
	return t.nodes.Live()
}
