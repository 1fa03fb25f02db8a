package testhelpers

import (
	"context"
	"github.com/myrjola/theoffice/internal/session"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

// NewSession starts a session with a discarded log and closes it when the test ends.
func NewSession(t *testing.T, maxNodes int) *session.Session {
	t.Helper()
	s, err := session.New(context.Background(), session.Config{MaxNodes: maxNodes}, NewLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close(context.Background()))
		require.Zero(t, s.Leaks(), "session leaked nodes")
	})
	return s
}
