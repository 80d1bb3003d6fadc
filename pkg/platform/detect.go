// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/x-linux-isp/isptool/pkg/core"
)

// Host tools the package operations rely on
const (
	ToolAptGet    = "apt-get"
	ToolSystemctl = "systemctl"
	ToolModprobe  = "modprobe"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux
	Arch      string   // arm64, arm, amd64
	Available []string // Host tools found in PATH
	Missing   []string // Host tools not found in PATH
}

// Detect checks which of tools are installed on the host
func Detect(tools ...string) (*Platform, error) {
	p := &Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	if p.OS != "linux" {
		return nil, fmt.Errorf("unsupported operating system: %s", p.OS)
	}

	for _, tool := range tools {
		if commandExists(tool) {
			p.Available = append(p.Available, tool)
		} else {
			p.Missing = append(p.Missing, tool)
		}
	}

	return p, nil
}

// Require fails with core.ErrToolMissing unless every tool is installed
func Require(tools ...string) error {
	p, err := Detect(tools...)
	if err != nil {
		return err
	}
	if len(p.Missing) > 0 {
		return fmt.Errorf("%w: %s", core.ErrToolMissing, strings.Join(p.Missing, ", "))
	}
	return nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, missing: %v)",
		p.OS, p.Arch, p.Available, p.Missing)
}
