// pkg/features/features.go
package features

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed about.toml
var aboutTOML string

// About describes the X-LINUX-ISP expansion package this tool ships with
type About struct {
	Version      string   `toml:"version"`
	Wiki         string   `toml:"wiki"`
	Software     []string `toml:"software"`
	Applications []string `toml:"applications"`
	Utilities    []string `toml:"utilities"`
}

// Load decodes the embedded about document
func Load() (*About, error) {
	return Decode(aboutTOML)
}

// Decode parses an about document
func Decode(data string) (*About, error) {
	var a About
	if _, err := toml.Decode(data, &a); err != nil {
		return nil, fmt.Errorf("features: failed to parse about document: %w", err)
	}
	if a.Version == "" {
		return nil, fmt.Errorf("features: about document has no version")
	}
	return &a, nil
}

// PrintVersion writes the expansion package version
func (a *About) PrintVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nX-LINUX-ISP version: %s\n\n", a.Version)
	return err
}

// PrintFeatures writes the supported software, application examples and
// utilities, followed by the wiki link
func (a *About) PrintFeatures(w io.Writer) error {
	var b strings.Builder
	section := func(title string, items []string) {
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, " - %s\n", item)
		}
	}

	section("ISP software", a.Software)
	section("Application examples", a.Applications)
	section("Utilities", a.Utilities)
	fmt.Fprintf(&b, "\nFind more information on the wiki page: %s\n", a.Wiki)

	_, err := io.WriteString(w, b.String())
	return err
}
