// pkg/control/types.go
package control

// Record is a (name, version) pair taken from a control block.
// Version is opaque and only ever compared for equality.
type Record struct {
	Name    string
	Version string
}

// Set is the ordered sequence of records produced by parsing one source.
// A name may appear several times; the last occurrence wins.
type Set []Record

// Versions reduces the set to a name -> version mapping, later records
// overwriting earlier ones.
func (s Set) Versions() map[string]string {
	m := make(map[string]string, len(s))
	for _, r := range s {
		m[r.Name] = r.Version
	}
	return m
}
