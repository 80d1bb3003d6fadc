// pkg/reconcile/reconcile.go
package reconcile

import (
	"sort"

	"github.com/x-linux-isp/isptool/pkg/control"
)

// Result splits the catalog into three disjoint lists. Records carry the
// catalog version.
type Result struct {
	Installed   []control.Record // same version on the host
	Upgradable  []control.Record // on the host with a different version
	Uninstalled []control.Record // absent from the host
}

// Reconcile classifies every distinct catalog name against the host status.
// Versions are compared as plain strings, so "1.0" and "1.0.0" differ.
// Names only known to the host are ignored. Output is sorted by name.
func Reconcile(catalog, status control.Set) *Result {
	catalogVersions := catalog.Versions()
	statusVersions := status.Versions()

	names := make([]string, 0, len(catalogVersions))
	for name := range catalogVersions {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{}
	for _, name := range names {
		rec := control.Record{Name: name, Version: catalogVersions[name]}

		hostVersion, ok := statusVersions[name]
		switch {
		case !ok:
			result.Uninstalled = append(result.Uninstalled, rec)
		case hostVersion == rec.Version:
			result.Installed = append(result.Installed, rec)
		default:
			result.Upgradable = append(result.Upgradable, rec)
		}
	}

	return result
}

// Contains reports whether list has a record named name
func Contains(list []control.Record, name string) bool {
	for _, r := range list {
		if r.Name == name {
			return true
		}
	}
	return false
}
