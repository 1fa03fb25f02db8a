package inventory_test

import (
	"bytes"
	"github.com/myrjola/theoffice/internal/arena"
	"github.com/myrjola/theoffice/internal/inventory"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestList_Add(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{
			name:  "empty",
			items: nil,
			want:  []string{},
		},
		{
			name:  "single",
			items: []string{"Stapler"},
			want:  []string{"Stapler"},
		},
		{
			name:  "head is most recent",
			items: []string{"Stapler", "Jello", "Dundie"},
			want:  []string{"Dundie", "Jello", "Stapler"},
		},
		{
			name:  "duplicates are kept",
			items: []string{"Pretzel", "Pretzel"},
			want:  []string{"Pretzel", "Pretzel"},
		},
		{
			name:  "long names are truncated",
			items: []string{"Limited edition Scranton Strangler bobblehead"},
			want:  []string{"Limited edition Scranton Stra"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := inventory.New(0)
			for _, name := range tt.items {
				head, err := l.Add(name)
				require.NoError(t, err)
				require.Equal(t, head, l.Head(), "Add returns the new head")
			}
			require.Equal(t, tt.want, l.Names())
			require.Equal(t, len(tt.want), l.Len())
		})
	}
}

func TestList_Show(t *testing.T) {
	l := inventory.New(0)

	var buf bytes.Buffer
	require.NoError(t, l.Show(&buf))
	require.Equal(t, "Inventory:\n- Empty\n", buf.String())

	_, err := l.Add("Stapler")
	require.NoError(t, err)
	_, err = l.Add("Jello")
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, l.Show(&buf))
	require.Equal(t, "Inventory:\n- Jello\n- Stapler\n", buf.String())
}

func TestList_AddExhausted(t *testing.T) {
	l := inventory.New(1)
	first, err := l.Add("Stapler")
	require.NoError(t, err)

	head, err := l.Add("Jello")
	require.ErrorIs(t, err, arena.ErrExhausted)
	require.Equal(t, first, head, "failed add leaves the list unchanged")
	require.Equal(t, []string{"Stapler"}, l.Names())
}

func TestList_Free(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		l := inventory.New(0)
		for range n {
			_, err := l.Add("Paper")
			require.NoError(t, err)
		}

		require.NoError(t, l.Free())
		require.Zero(t, l.Live())
		require.Equal(t, arena.Nil, l.Head())

		// A second teardown has nothing left to release.
		require.NoError(t, l.Free())

		var buf bytes.Buffer
		require.NoError(t, l.Show(&buf))
		require.Equal(t, "Inventory:\n- Empty\n", buf.String())
	}
}

func TestList_Name(t *testing.T) {
	l := inventory.New(0)
	ref, err := l.Add("Stapler")
	require.NoError(t, err)

	name, ok := l.Name(ref)
	require.True(t, ok)
	require.Equal(t, "Stapler", name)

	_, ok = l.Name(arena.Nil)
	require.False(t, ok)
}
