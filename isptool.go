// isptool.go
package isptool

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/x-linux-isp/isptool/pkg/apt"
	"github.com/x-linux-isp/isptool/pkg/catalog"
	"github.com/x-linux-isp/isptool/pkg/control"
	"github.com/x-linux-isp/isptool/pkg/core"
	"github.com/x-linux-isp/isptool/pkg/kmod"
	"github.com/x-linux-isp/isptool/pkg/platform"
	"github.com/x-linux-isp/isptool/pkg/reconcile"
	"github.com/x-linux-isp/isptool/pkg/runner"
	"github.com/x-linux-isp/isptool/pkg/status"
)

// Re-export core types for convenience
type (
	Config = core.Config
	Record = control.Record
	Result = reconcile.Result
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options wires a Tool to its environment. Zero values use the host.
type Options struct {
	Runner core.Runner // Default: runs commands with os/exec
	Stdout io.Writer   // Default: os.Stdout
	Stderr io.Writer   // Default: os.Stderr

	// RequireTools checks that host commands exist before they are used.
	// Default: platform.Require
	RequireTools func(tools ...string) error
}

// Tool reconciles the X-LINUX-ISP catalog with the host and manages its
// packages
type Tool struct {
	config   *core.Config
	catalog  *catalog.Loader
	apt      *apt.PackageManager
	reloader *kmod.Reloader
	require  func(tools ...string) error
	stdout   io.Writer
	logger   *log.Logger
}

// New creates a Tool from cfg
func New(cfg *core.Config, opts Options) (*Tool, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.RequireTools == nil {
		opts.RequireTools = platform.Require
	}
	if opts.Runner == nil {
		opts.Runner = runner.New(newLogger(cfg.Debug, opts.Stderr, "[exec] "))
	}

	loader, err := catalog.NewLoader(cfg, newLogger(cfg.Debug, opts.Stderr, "[catalog] "))
	if err != nil {
		return nil, fmt.Errorf("initializing catalog loader: %w", err)
	}

	pm := apt.NewPackageManager(&apt.Config{
		Runner: opts.Runner,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		Debug:  cfg.Debug,
		Logger: newLogger(cfg.Debug, opts.Stderr, "[apt] "),
	})

	reloader := kmod.NewReloader(&kmod.Config{
		Module:  cfg.KernelModule,
		Service: cfg.SessionService,
		Runner:  opts.Runner,
		Out:     opts.Stdout,
		Logger:  newLogger(cfg.Debug, opts.Stderr, "[kmod] "),
	})

	return &Tool{
		config:   cfg,
		catalog:  loader,
		apt:      pm,
		reloader: reloader,
		require:  opts.RequireTools,
		stdout:   opts.Stdout,
		logger:   newLogger(cfg.Debug, opts.Stderr, "[isptool] "),
	}, nil
}

func newLogger(debug bool, w io.Writer, prefix string) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, prefix, log.LstdFlags)
}

// Config returns the configuration the tool runs with
func (t *Tool) Config() *Config {
	return t.config
}

// Sync refreshes the host package lists
func (t *Tool) Sync(ctx context.Context) error {
	if err := t.require(platform.ToolAptGet); err != nil {
		return &core.Error{Op: apt.OpSync, Err: fmt.Errorf("%w: %w", core.ErrSyncFailed, err)}
	}
	return t.apt.Update(ctx)
}

// Classify loads the catalog and the host status and reconciles them
func (t *Tool) Classify() (*Result, error) {
	catalogSet, err := t.catalog.Load()
	if err != nil {
		return nil, err
	}

	statusSet, err := status.Load(t.config.StatusPath, t.config.SelfPackage)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(catalogSet, statusSet)
	t.logger.Printf("Classified: %d installed, %d upgradable, %d not installed",
		len(result.Installed), len(result.Upgradable), len(result.Uninstalled))
	return result, nil
}

// List classifies the catalog and prints it
func (t *Tool) List() error {
	result, err := t.Classify()
	if err != nil {
		return err
	}
	return reconcile.Print(t.stdout, result)
}

// Install installs pkg. If the sentinel package was not installed at its
// catalog version beforehand, the kernel module is reloaded afterwards so
// the new camera stack is picked up without a reboot.
func (t *Tool) Install(ctx context.Context, pkg string) error {
	before, err := t.Classify()
	if err != nil {
		return err
	}

	if err := t.require(platform.ToolAptGet); err != nil {
		return &core.Error{Op: apt.OpInstall, Package: pkg, Err: err}
	}
	if err := t.apt.Install(ctx, pkg); err != nil {
		return err
	}
	fmt.Fprintf(t.stdout, "%s has been installed successfully.\n", pkg)

	if reconcile.Contains(before.Installed, t.config.SentinelPackage) {
		t.logger.Printf("%s already installed, no kernel module reload", t.config.SentinelPackage)
		return nil
	}

	if err := t.require(platform.ToolSystemctl, platform.ToolModprobe); err != nil {
		return &core.Error{Op: kmod.OpReload, Package: t.config.KernelModule, Err: err}
	}
	return t.reloader.Reload(ctx)
}

// Remove removes pkg
func (t *Tool) Remove(ctx context.Context, pkg string) error {
	if _, err := t.Classify(); err != nil {
		return err
	}

	if err := t.require(platform.ToolAptGet); err != nil {
		return &core.Error{Op: apt.OpRemove, Package: pkg, Err: err}
	}
	if err := t.apt.Remove(ctx, pkg); err != nil {
		return err
	}
	fmt.Fprintf(t.stdout, "%s has been removed successfully.\n", pkg)
	return nil
}
