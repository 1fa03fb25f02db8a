package e2etest_test

import (
	"context"
	"fmt"
	"github.com/myrjola/theoffice/internal/e2etest"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func echo(_ context.Context, stdin io.Reader, stdout io.Writer, logSink io.Writer,
	lookupEnv func(string) (string, bool)) error {
	greeting, _ := lookupEnv("GREETING")
	_, _ = fmt.Fprintln(logSink, "echoing")
	_, _ = fmt.Fprint(stdout, greeting+" ")
	_, err := io.Copy(stdout, stdin)
	return err
}

func TestPlay(t *testing.T) {
	transcript, err := e2etest.Play(context.Background(), echo,
		e2etest.Env(map[string]string{"GREETING": "Hello"}), "1", "7")
	require.NoError(t, err)
	require.Equal(t, "Hello 1\n7\n", transcript.Output)
	require.Equal(t, "echoing\n", transcript.Logs)
}

func TestPlay_KeepsTranscriptOnError(t *testing.T) {
	sentinel := errors.NewSentinel("fired")
	failing := func(_ context.Context, _ io.Reader, stdout io.Writer, _ io.Writer, _ func(string) (string, bool)) error {
		_, _ = fmt.Fprint(stdout, "You're fired!")
		return sentinel
	}

	transcript, err := e2etest.Play(context.Background(), failing, e2etest.Env(nil))
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, "You're fired!", transcript.Output)
}
