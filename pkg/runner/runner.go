// pkg/runner/runner.go
package runner

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
)

// Exec runs commands on the host with os/exec
type Exec struct {
	logger *log.Logger
}

// New creates an Exec runner. A nil logger discards output.
func New(logger *log.Logger) *Exec {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Exec{logger: logger}
}

// Run executes name with args, streaming its output
func (e *Exec) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	e.logger.Printf("Running: %s", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return nil
}

// Output executes name with args and returns its combined output. The
// output read so far is returned even when the command fails.
func (e *Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	e.logger.Printf("Running: %s", commandLine(name, args))

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return out, nil
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
