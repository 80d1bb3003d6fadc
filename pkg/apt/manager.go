// pkg/apt/manager.go
package apt

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/x-linux-isp/isptool/pkg/core"
)

// NewPackageManager creates an apt-get backed package manager
func NewPackageManager(cfg *Config) *PackageManager {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.AptGet == "" {
		cfg.AptGet = DefaultAptGet
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[apt] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &PackageManager{
		config: cfg,
		runner: cfg.Runner,
		logger: logger,
	}
}

// Update refreshes the package lists. apt-get reports unreachable sources
// as warnings and still exits 0, so its output is scanned as well.
func (pm *PackageManager) Update(ctx context.Context) error {
	pm.logger.Printf("Synchronizing package lists...")

	out, err := pm.runner.Output(ctx, pm.config.AptGet, "update")
	if err != nil {
		pm.logger.Printf("  apt-get update failed: %v", err)
		return &core.Error{Op: OpSync, Err: fmt.Errorf("%w: %w", core.ErrSyncFailed, err)}
	}

	if line, ok := findSyncFailure(out); ok {
		pm.logger.Printf("  apt-get update reported: %s", line)
		return &core.Error{Op: OpSync, Err: fmt.Errorf("%w: %s", core.ErrSyncFailed, line)}
	}

	pm.logger.Printf("  ✓ Package lists synchronized")
	return nil
}

// Install refreshes the package lists and installs pkg
func (pm *PackageManager) Install(ctx context.Context, pkg string) error {
	pm.logger.Printf("Installing %s", pkg)

	if err := pm.run(ctx, "update"); err != nil {
		return &core.Error{Op: OpInstall, Package: pkg, Err: err}
	}
	if err := pm.run(ctx, "install", "-y", pkg); err != nil {
		return &core.Error{Op: OpInstall, Package: pkg, Err: err}
	}
	return nil
}

// Remove removes pkg along with dependencies nothing else needs
func (pm *PackageManager) Remove(ctx context.Context, pkg string) error {
	pm.logger.Printf("Removing %s", pkg)

	if err := pm.run(ctx, "autoremove", "-y", pkg); err != nil {
		return &core.Error{Op: OpRemove, Package: pkg, Err: err}
	}
	return nil
}

func (pm *PackageManager) run(ctx context.Context, args ...string) error {
	if err := pm.runner.Run(ctx, pm.config.Stdout, pm.config.Stderr, pm.config.AptGet, args...); err != nil {
		return fmt.Errorf("%w: %w", core.ErrCommandFailed, err)
	}
	return nil
}

func findSyncFailure(out []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := scanner.Text(); strings.Contains(line, syncFailureMarker) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}
