// pkg/core/interface.go
package core

import (
	"context"
	"io"
)

// Runner executes host commands. It is the only way the tool spawns
// processes, which lets tests observe the exact command sequence.
type Runner interface {
	// Run executes name with args, streaming its output to stdout and stderr.
	Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error

	// Output executes name with args and returns its combined output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
