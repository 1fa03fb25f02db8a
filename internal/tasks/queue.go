// Package tasks is the FIFO queue of office tasks waiting to be completed.
package tasks

import (
	"fmt"
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/textutil"
	"io"
	"log/slog"
	"strings"
)

// MaxDescriptionLength is the longest task description kept, in runes.
const MaxDescriptionLength = 99

type task struct {
	description string
	next        arena.Ref
}

// Queue tracks front and rear separately. Rear is [arena.Nil] exactly when front is, and with a single task both
// refer to it.
type Queue struct {
	tasks *arena.Arena[task]
	front arena.Ref
	rear  arena.Ref
}

// New creates an empty queue holding at most capacity tasks, zero meaning unbounded.
func New(capacity int) *Queue {
	return &Queue{
		tasks: arena.New[task](capacity),
		front: arena.Nil,
		rear:  arena.Nil,
	}
}

// Enqueue appends a task after the rear and returns the new front and rear.
func (q *Queue) Enqueue(description string) (arena.Ref, arena.Ref, error) {
	ref, err := q.tasks.Alloc(task{
		description: textutil.Truncate(description, MaxDescriptionLength),
		next:        arena.Nil,
	})
	if err != nil {
		return q.front, q.rear, errors.Wrap(err, "enqueue task", slog.String("description", description))
	}

	if q.rear == arena.Nil {
		q.front = ref
	} else {
		q.tasks.Get(q.rear).next = ref
	}
	q.rear = ref
	return q.front, q.rear, nil
}

// Dequeue releases the front task and returns its description. ok is false when there was nothing to do, which is
// not an error.
func (q *Queue) Dequeue() (string, bool, error) {
	if q.front == arena.Nil {
		return "", false, nil
	}
	t, err := q.tasks.Release(q.front)
	if err != nil {
		return "", false, errors.Wrap(err, "dequeue task")
	}
	q.front = t.next
	if q.front == arena.Nil {
		q.rear = arena.Nil
	}
	return t.description, true, nil
}

// Complete dequeues a task and reports the outcome to w.
func (q *Queue) Complete(w io.Writer) error {
	description, ok, err := q.Dequeue()
	if err != nil {
		return err
	}
	msg := "No tasks to complete.\n"
	if ok {
		msg = fmt.Sprintf("Completed task: %s\n", description)
	}
	if _, err = io.WriteString(w, msg); err != nil {
		return errors.Wrap(err, "write completed task")
	}
	return nil
}

// Front returns the oldest task or [arena.Nil].
func (q *Queue) Front() arena.Ref {
	return q.front
}

// Rear returns the newest task or [arena.Nil].
func (q *Queue) Rear() arena.Ref {
	return q.rear
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return q.tasks.Live()
}

// Descriptions returns the tasks from front to rear.
func (q *Queue) Descriptions() []string {
	descriptions := make([]string, 0, q.tasks.Live())
	for ref := q.front; ref != arena.Nil; {
		t := q.tasks.Get(ref)
		descriptions = append(descriptions, t.description)
		ref = t.next
	}
	return descriptions
}

// Display writes the tasks from front to rear.
func (q *Queue) Display(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Tasks Queue:\n")
	for _, description := range q.Descriptions() {
		_, _ = fmt.Fprintf(&b, "- %s\n", description)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write tasks")
	}
	return nil
}

// Free releases every task from front onward.
func (q *Queue) Free() error {
	var errs []error
	for ref := q.front; ref != arena.Nil; {
		t, err := q.tasks.Release(ref)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "free task"))
			break
		}
		ref = t.next
	}
	q.front = arena.Nil
	q.rear = arena.Nil
	return errors.Join(errs...)
}

// Live returns the number of tasks not yet released.
func (q *Queue) Live() int {
	return q.tasks.Live()
}
