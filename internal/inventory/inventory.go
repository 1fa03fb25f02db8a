// Package inventory keeps the player's items in a singly linked list where the newest item is the head.
package inventory

import (
	"fmt"
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/textutil"
	"io"
	"log/slog"
	"strings"
)

// MaxNameLength is the longest item name kept, in runes. Longer names are truncated.
const MaxNameLength = 29

type item struct {
	name string
	next arena.Ref
}

// List is the inventory. It owns all of its items.
type List struct {
	items *arena.Arena[item]
	head  arena.Ref
}

// New creates an empty inventory holding at most capacity items, zero meaning unbounded.
func New(capacity int) *List {
	return &List{
		items: arena.New[item](capacity),
		head:  arena.Nil,
	}
}

// Add inserts an item named name at the head and returns the new head.
//
// The only failure is [arena.ErrExhausted], in which case the list is unchanged.
func (l *List) Add(name string) (arena.Ref, error) {
	ref, err := l.items.Alloc(item{
		name: textutil.Truncate(name, MaxNameLength),
		next: l.head,
	})
	if err != nil {
		return l.head, errors.Wrap(err, "add inventory item", slog.String("name", name))
	}
	l.head = ref
	return ref, nil
}

// Head returns the most recently added item or [arena.Nil].
func (l *List) Head() arena.Ref {
	return l.head
}

// Name returns the name of the item at ref.
func (l *List) Name(ref arena.Ref) (string, bool) {
	it := l.items.Get(ref)
	if it == nil {
		return "", false
	}
	return it.name, true
}

// Len returns the number of items.
func (l *List) Len() int {
	return l.items.Live()
}

// Names returns the item names from head to tail.
func (l *List) Names() []string {
	names := make([]string, 0, l.items.Live())
	for ref := l.head; ref != arena.Nil; {
		it := l.items.Get(ref)
		names = append(names, it.name)
		ref = it.next
	}
	return names
}

// Show writes the inventory head to tail, or a single "Empty" entry.
func (l *List) Show(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Inventory:\n")
	names := l.Names()
	if len(names) == 0 {
		b.WriteString("- Empty\n")
	}
	for _, name := range names {
		_, _ = fmt.Fprintf(&b, "- %s\n", name)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write inventory")
	}
	return nil
}

// Free releases every item. The list is empty afterwards and can be reused.
func (l *List) Free() error {
	var errs []error
	for ref := l.head; ref != arena.Nil; {
		it, err := l.items.Release(ref)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "free inventory item"))
			break
		}
		ref = it.next
	}
	l.head = arena.Nil
	return errors.Join(errs...)
}

// Live returns the number of items not yet released.
func (l *List) Live() int {
	return l.items.Live()
}
