// pkg/kmod/kmod.go
package kmod

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/x-linux-isp/isptool/pkg/core"
)

// OpReload is the Op of errors returned by Reload
const OpReload = "reloading kernel module"

// Config configures the kernel module reload sequence
type Config struct {
	Module  string      // kernel module to reload, e.g. stm32_dcmipp
	Service string      // display session holding the module open
	Runner  core.Runner // Required
	Out     io.Writer   // progress messages and command output
	Logger  *log.Logger // Custom logger (optional)
}

// Reloader reloads a kernel module underneath a running display session
type Reloader struct {
	config *Config
	logger *log.Logger
}

// step is one command of the reload sequence. notice, if set, is printed
// before the command runs.
type step struct {
	notice string
	name   string
	args   []string
}

// NewReloader creates a Reloader
func NewReloader(cfg *Config) *Reloader {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	return &Reloader{config: cfg, logger: logger}
}

// Reload stops the session, removes and re-inserts the module, then starts
// the session again. It stops at the first failing step and leaves the
// system as is: a partially reloaded module needs a reset, not a retry.
func (r *Reloader) Reload(ctx context.Context) error {
	fmt.Fprintf(r.config.Out, "\nKernel module %s need to be reloaded: reload on going... \n", r.config.Module)

	for _, s := range r.sequence() {
		if s.notice != "" {
			fmt.Fprint(r.config.Out, s.notice)
		}
		r.logger.Printf("Reload step: %s %v", s.name, s.args)
		if err := r.config.Runner.Run(ctx, r.config.Out, r.config.Out, s.name, s.args...); err != nil {
			return &core.Error{Op: OpReload, Package: r.config.Module, Err: fmt.Errorf("%w: %w", core.ErrCommandFailed, err)}
		}
	}

	fmt.Fprintf(r.config.Out, "\nKernel module %s reload successfully done.\n", r.config.Module)
	return nil
}

func (r *Reloader) sequence() []step {
	return []step{
		{name: "systemctl", args: []string{"stop", r.config.Service}},
		{name: "modprobe", args: []string{"-r", r.config.Module}},
		{notice: "\nWeston is restarting...\n", name: "modprobe", args: []string{r.config.Module}},
		{name: "systemctl", args: []string{"start", r.config.Service}},
	}
}
