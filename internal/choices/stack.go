// Package choices records conversation choices on a LIFO stack.
//
// Nothing in the game pushes a choice yet, so at runtime the stack is always empty. It is still fully functional.
package choices

import (
	"fmt"
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/textutil"
	"io"
	"log/slog"
	"strings"
)

// MaxLabelLength is the longest choice label kept, in runes.
const MaxLabelLength = 99

type record struct {
	label string
	next  arena.Ref
}

// Stack owns its records. Top is the most recently pushed one.
type Stack struct {
	records *arena.Arena[record]
	top     arena.Ref
}

// New creates an empty stack holding at most capacity records, zero meaning unbounded.
func New(capacity int) *Stack {
	return &Stack{
		records: arena.New[record](capacity),
		top:     arena.Nil,
	}
}

// Push puts label above the current top and returns the new top.
func (s *Stack) Push(label string) (arena.Ref, error) {
	ref, err := s.records.Alloc(record{
		label: textutil.Truncate(label, MaxLabelLength),
		next:  s.top,
	})
	if err != nil {
		return s.top, errors.Wrap(err, "push choice", slog.String("label", label))
	}
	s.top = ref
	return ref, nil
}

// Pop releases the top record and returns the one beneath it. Popping an empty stack does nothing.
func (s *Stack) Pop() (arena.Ref, error) {
	if s.top == arena.Nil {
		return arena.Nil, nil
	}
	rec, err := s.records.Release(s.top)
	if err != nil {
		return s.top, errors.Wrap(err, "pop choice")
	}
	s.top = rec.next
	return s.top, nil
}

// Top returns the most recently pushed record or [arena.Nil].
func (s *Stack) Top() arena.Ref {
	return s.top
}

// Len returns the number of records.
func (s *Stack) Len() int {
	return s.records.Live()
}

// Labels returns the labels from top to bottom.
func (s *Stack) Labels() []string {
	labels := make([]string, 0, s.records.Live())
	for ref := s.top; ref != arena.Nil; {
		rec := s.records.Get(ref)
		labels = append(labels, rec.label)
		ref = rec.next
	}
	return labels
}

// Display writes the stack from top to bottom.
func (s *Stack) Display(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Choices Stack:\n")
	for _, label := range s.Labels() {
		_, _ = fmt.Fprintf(&b, "- %s\n", label)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write choices")
	}
	return nil
}

// Free releases every record.
func (s *Stack) Free() error {
	var errs []error
	for ref := s.top; ref != arena.Nil; {
		rec, err := s.records.Release(ref)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "free choice"))
			break
		}
		ref = rec.next
	}
	s.top = arena.Nil
	return errors.Join(errs...)
}

// Live returns the number of records not yet released.
func (s *Stack) Live() int {
	return s.records.Live()
}
