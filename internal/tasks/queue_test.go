package tasks_test

import (
	"bytes"
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/tasks"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestQueue_FIFO(t *testing.T) {
	tests := []struct {
		name         string
		descriptions []string
	}{
		{name: "empty", descriptions: nil},
		{name: "single", descriptions: []string{"Complete the sales report"}},
		{name: "several", descriptions: []string{"Complete the sales report", "Check with Jim about the prank", "Order paper"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tasks.New(0)
			for _, d := range tt.descriptions {
				_, rear, err := q.Enqueue(d)
				require.NoError(t, err)
				require.Equal(t, rear, q.Rear())
			}

			var got []string
			for {
				d, ok, err := q.Dequeue()
				require.NoError(t, err)
				if !ok {
					break
				}
				got = append(got, d)
			}
			require.Equal(t, tt.descriptions, got)
			require.Equal(t, arena.Nil, q.Front())
			require.Equal(t, arena.Nil, q.Rear())
			require.Zero(t, q.Live())
		})
	}
}

func TestQueue_SingleElementFrontIsRear(t *testing.T) {
	q := tasks.New(0)
	front, rear, err := q.Enqueue("A")
	require.NoError(t, err)
	require.Equal(t, front, rear)

	_, _, err = q.Enqueue("B")
	require.NoError(t, err)
	require.NotEqual(t, q.Front(), q.Rear())

	_, _, err = q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, q.Front(), q.Rear())
}

func TestQueue_DequeueEmptyIsIdempotent(t *testing.T) {
	q := tasks.New(0)
	for range 3 {
		d, ok, err := q.Dequeue()
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, d)
		require.Equal(t, arena.Nil, q.Front())
		require.Equal(t, arena.Nil, q.Rear())
	}

	var buf bytes.Buffer
	require.NoError(t, q.Complete(&buf))
	require.NoError(t, q.Complete(&buf))
	require.Equal(t, "No tasks to complete.\nNo tasks to complete.\n", buf.String())
}

func TestQueue_CompleteThenDisplay(t *testing.T) {
	q := tasks.New(0)
	_, _, err := q.Enqueue("A")
	require.NoError(t, err)
	_, _, err = q.Enqueue("B")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, q.Complete(&buf))
	require.Equal(t, "Completed task: A\n", buf.String())

	buf.Reset()
	require.NoError(t, q.Display(&buf))
	require.Equal(t, "Tasks Queue:\n- B\n", buf.String())
}

func TestQueue_EnqueueAfterDrain(t *testing.T) {
	q := tasks.New(0)
	_, _, err := q.Enqueue("A")
	require.NoError(t, err)
	_, _, err = q.Dequeue()
	require.NoError(t, err)

	front, rear, err := q.Enqueue("B")
	require.NoError(t, err)
	require.Equal(t, front, rear)
	require.Equal(t, []string{"B"}, q.Descriptions())
}

func TestQueue_EnqueueExhausted(t *testing.T) {
	q := tasks.New(1)
	front, rear, err := q.Enqueue("A")
	require.NoError(t, err)

	gotFront, gotRear, err := q.Enqueue("B")
	require.ErrorIs(t, err, arena.ErrExhausted)
	require.Equal(t, front, gotFront)
	require.Equal(t, rear, gotRear)
	require.Equal(t, []string{"A"}, q.Descriptions())
}

func TestQueue_Free(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		q := tasks.New(0)
		for range n {
			_, _, err := q.Enqueue("task")
			require.NoError(t, err)
		}
		require.NoError(t, q.Free())
		require.Zero(t, q.Live())
		require.NoError(t, q.Free())

		var buf bytes.Buffer
		require.NoError(t, q.Display(&buf))
		require.Equal(t, "Tasks Queue:\n", buf.String())
	}
}
