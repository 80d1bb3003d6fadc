package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found, skipping")
	}
}

func TestRunStreamsOutput(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	err := New(nil).Run(context.Background(), &stdout, &stderr, "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunFailure(t *testing.T) {
	requireShell(t)

	var out bytes.Buffer
	err := New(nil).Run(context.Background(), &out, &out, "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sh -c exit 3")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestRunMissingBinary(t *testing.T) {
	err := New(nil).Run(context.Background(), nil, nil, "definitely-not-a-command-isptool")
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestOutputCombined(t *testing.T) {
	requireShell(t)

	out, err := New(nil).Output(context.Background(), "sh", "-c", "echo a; echo 'W: Failed' >&2; exit 1")
	require.Error(t, err)
	assert.Contains(t, string(out), "a\n")
	assert.Contains(t, string(out), "W: Failed")
}

func TestRunCancelled(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(nil).Run(ctx, nil, nil, "sh", "-c", "sleep 5")
	require.Error(t, err)
}
