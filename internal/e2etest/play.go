package e2etest

import (
	"bytes"
	"context"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/myrjola/theoffice/internal/testhelpers"
	"io"
)

// RunFunc is the signature of the program entry point.
type RunFunc func(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	logSink io.Writer,
	lookupEnv func(string) (string, bool),
) error

// Transcript is what the player saw and what the program logged.
type Transcript struct {
	Output string
	Logs   string
}

// Play runs the program with the given lines as the player's input.
//
// lookupEnv is a function that returns the value of an environment variable. It has same signature as [os.LookupEnv].
// The transcript is returned also when run fails so that tests can inspect what happened before the failure.
func Play(
	ctx context.Context,
	run RunFunc,
	lookupEnv func(string) (string, bool),
	lines ...string,
) (Transcript, error) {
	var stdout, logs bytes.Buffer
	err := run(ctx, testhelpers.Input(lines...), &stdout, &logs, lookupEnv)
	transcript := Transcript{
		Output: stdout.String(),
		Logs:   logs.String(),
	}
	if err != nil {
		return transcript, errors.Wrap(err, "play")
	}
	return transcript, nil
}

// Env returns a lookup function over a fixed environment.
func Env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
