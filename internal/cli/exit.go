// internal/cli/exit.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/x-linux-isp/isptool"
	"github.com/x-linux-isp/isptool/pkg/apt"
	"github.com/x-linux-isp/isptool/pkg/core"
	"github.com/x-linux-isp/isptool/pkg/kmod"
)

// Exit codes
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitCatalogNotFound = 255
)

// ExitError reports an exit code once the message has been printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var failColor = color.New(color.FgRed)

func fail(w io.Writer, msg string) {
	failColor.Fprintln(w, msg)
}

// report prints the operator-facing message for err and picks the exit code.
func report(env environment, cfg *core.Config, err error) error {
	if cfg.Debug {
		fmt.Fprintf(env.stderr, "%v\n", err)
	}

	var opErr *isptool.Error
	hasOp := errors.As(err, &opErr)

	switch {
	case errors.Is(err, isptool.ErrSyncFailed):
		fmt.Fprintln(env.stdout, "Fail to synchronize ISP packages, apt-get update fails.")
		return &ExitError{Code: ExitOK, Err: err}

	case errors.Is(err, isptool.ErrCatalogNotFound):
		fail(env.stderr, "list of ISP packages not found.")
		return &ExitError{Code: ExitCatalogNotFound, Err: err}

	case errors.Is(err, isptool.ErrSourceUnreadable):
		fmt.Fprintf(env.stdout, "\nTo install x-linux-isp packages, please follow the instructions provided on the wiki page: \n%s\n", cfg.WikiURL)
		return &ExitError{Code: ExitFailure, Err: err}

	case hasOp && opErr.Op == kmod.OpReload:
		fail(env.stderr, "Fail to upgrade the kernel module. Please reset your platform.")

	case hasOp && opErr.Op == apt.OpInstall:
		fail(env.stderr, "E: Failed to install package "+opErr.Package)

	case hasOp && opErr.Op == apt.OpRemove:
		fail(env.stderr, "E: Failed to remove package "+opErr.Package)

	default:
		fail(env.stderr, fmt.Sprintf("E: %v", err))
	}
	return &ExitError{Code: ExitFailure, Err: err}
}
