// pkg/apt/constants.go
package apt

// Ops reported in *core.Error values
const (
	OpSync    = "sync"
	OpInstall = "install"
	OpRemove  = "remove"
)

const (
	// DefaultAptGet is the package manager binary
	DefaultAptGet = "apt-get"

	// syncFailureMarker appears in apt-get update output when a source
	// could not be fetched, even though apt-get itself exits 0.
	syncFailureMarker = "W: Failed"
)
