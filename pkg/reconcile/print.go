// pkg/reconcile/print.go
package reconcile

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/x-linux-isp/isptool/pkg/control"
)

// Tags are padded so package names line up in a column.
const (
	TagInstalled   = "[installed]      "
	TagUpgradable  = "[upgradable]     "
	TagUninstalled = "[not installed]  "
)

var (
	installedColor  = color.New(color.FgGreen)
	upgradableColor = color.New(color.FgYellow)
)

// Print renders the result as three groups separated by blank lines:
// installed, upgradable, then not installed.
func Print(w io.Writer, r *Result) error {
	groups := []struct {
		tag     string
		paint   *color.Color
		records []control.Record
	}{
		{TagInstalled, installedColor, r.Installed},
		{TagUpgradable, upgradableColor, r.Upgradable},
		{TagUninstalled, nil, r.Uninstalled},
	}

	for _, g := range groups {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		tag := g.tag
		if g.paint != nil {
			tag = g.paint.Sprint(tag)
		}
		for _, rec := range g.records {
			if _, err := fmt.Fprintf(w, " %s%s\n", tag, rec.Name); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
