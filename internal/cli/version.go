// internal/cli/version.go
package cli

import (
	"fmt"
	"io"

	"github.com/x-linux-isp/isptool/pkg/features"
)

func runVersion(w io.Writer) error {
	about, err := features.Load()
	if err != nil {
		return fmt.Errorf("loading version: %w", err)
	}
	return about.PrintVersion(w)
}

func runFeatures(w io.Writer) error {
	about, err := features.Load()
	if err != nil {
		return fmt.Errorf("loading features: %w", err)
	}
	return about.PrintFeatures(w)
}
