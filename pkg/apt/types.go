// pkg/apt/types.go
package apt

import (
	"io"
	"log"

	"github.com/x-linux-isp/isptool/pkg/core"
)

// Config configures the apt-get wrapper
type Config struct {
	AptGet string      // Default: apt-get
	Runner core.Runner // Required
	Stdout io.Writer   // apt-get output during install/remove
	Stderr io.Writer
	Debug  bool        // Enable debug logging
	Logger *log.Logger // Custom logger (optional)
}

// PackageManager delegates package operations to apt-get
type PackageManager struct {
	config *Config
	runner core.Runner
	logger *log.Logger
}
