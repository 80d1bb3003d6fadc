// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrFake is returned for commands registered with Fail.
var ErrFake = errors.New("fake command failure")

// Runner records every command it is asked to run and never spawns a
// process. Commands are keyed by their full command line, e.g.
// "modprobe -r stm32_dcmipp".
type Runner struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]error
	outputs  map[string]string
}

// NewRunner returns a Runner where every command succeeds silently.
func NewRunner() *Runner {
	return &Runner{
		failures: make(map[string]error),
		outputs:  make(map[string]string),
	}
}

// Fail makes command return ErrFake.
func (r *Runner) Fail(command string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[command] = ErrFake
	return r
}

// SetOutput sets what command prints.
func (r *Runner) SetOutput(command, output string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[command] = output
	return r
}

// Calls returns the command lines run so far, in order.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *Runner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	out, err := r.record(name, args)
	if stdout != nil && out != "" {
		_, _ = io.WriteString(stdout, out)
	}
	return err
}

func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := r.record(name, args)
	return []byte(out), err
}

func (r *Runner) record(name string, args []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, line)
	return r.outputs[line], r.failures[line]
}
