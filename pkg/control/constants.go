// pkg/control/constants.go
package control

const (
	// PackagePrefix starts a new record in a control block
	PackagePrefix = "Package: "

	// VersionPrefix sets the version of the current record
	VersionPrefix = "Version: "

	// SelfPackage is the package identifier of this tool. It is never
	// reported as part of a package set.
	SelfPackage = "x-linux-isp-tool"
)

// Compressed index suffixes recognized by Open
const (
	SuffixXz   = ".xz"
	SuffixGzip = ".gz"
	SuffixZstd = ".zst"
)

const (
	initialBufferSize = 64 * 1024
	maxLineSize       = 1024 * 1024
)
