// Package arena stores nodes of linked structures in a slice and addresses them by index.
//
// Links between nodes are [Ref] values instead of pointers. Releasing a node puts its slot on a free list so that the
// next allocation reuses it. The arena counts live nodes, which makes leaks and double releases observable.
package arena

import (
	"github.com/myrjola/theoffice/internal/errors"
	"log/slog"
)

// Ref addresses a node in an [Arena]. The zero value is a valid index, so absent links use [Nil].
type Ref int

// Nil is the absent link.
const Nil Ref = -1

var (
	// ErrExhausted is returned when the arena has reached its capacity. Callers treat it as fatal.
	ErrExhausted = errors.NewSentinel("arena exhausted")
	// ErrDoubleRelease is returned when a node is released that is not live.
	ErrDoubleRelease = errors.NewSentinel("node already released")
	// ErrInvalidRef is returned for refs that the arena never handed out.
	ErrInvalidRef = errors.NewSentinel("invalid node reference")
)

type slot[T any] struct {
	value    T
	live     bool
	nextFree Ref
}

// Arena owns every node of one structure.
type Arena[T any] struct {
	slots    []slot[T]
	free     Ref
	live     int
	capacity int
}

// New creates an arena holding at most capacity live nodes. A capacity of zero or less means unbounded.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots:    nil,
		free:     Nil,
		live:     0,
		capacity: capacity,
	}
}

// Alloc stores value in a free slot and returns its ref.
func (a *Arena[T]) Alloc(value T) (Ref, error) {
	if a.capacity > 0 && a.live >= a.capacity {
		return Nil, errors.Wrap(ErrExhausted, "allocate node", slog.Int("capacity", a.capacity))
	}

	if a.free != Nil {
		ref := a.free
		s := &a.slots[ref]
		a.free = s.nextFree
		s.value = value
		s.live = true
		s.nextFree = Nil
		a.live++
		return ref, nil
	}

	a.slots = append(a.slots, slot[T]{value: value, live: true, nextFree: Nil})
	a.live++
	return Ref(len(a.slots) - 1), nil
}

// Get returns a pointer to the live node at ref or nil when ref is absent or released.
//
// The pointer is only valid until the next Alloc.
func (a *Arena[T]) Get(ref Ref) *T {
	if !a.valid(ref) || !a.slots[ref].live {
		return nil
	}
	return &a.slots[ref].value
}

// Release frees the node at ref and returns its last value.
func (a *Arena[T]) Release(ref Ref) (T, error) {
	var zero T
	if !a.valid(ref) {
		return zero, errors.Wrap(ErrInvalidRef, "release node", slog.Int("ref", int(ref)))
	}
	s := &a.slots[ref]
	if !s.live {
		return zero, errors.Wrap(ErrDoubleRelease, "release node", slog.Int("ref", int(ref)))
	}

	value := s.value
	s.value = zero
	s.live = false
	s.nextFree = a.free
	a.free = ref
	a.live--
	return value, nil
}

// Live returns the number of allocated nodes that have not been released.
func (a *Arena[T]) Live() int {
	return a.live
}

// LiveRefs returns the refs of every live node in slot order.
func (a *Arena[T]) LiveRefs() []Ref {
	refs := make([]Ref, 0, a.live)
	for i := range a.slots {
		if a.slots[i].live {
			refs = append(refs, Ref(i))
		}
	}
	return refs
}

func (a *Arena[T]) valid(ref Ref) bool {
	return ref >= 0 && int(ref) < len(a.slots)
}
