// errors.go
package isptool

import "github.com/x-linux-isp/isptool/pkg/core"

// Re-export error values so callers only need the root package
var (
	// ErrSourceUnreadable indicates a package index or status file could not be read
	ErrSourceUnreadable = core.ErrSourceUnreadable

	// ErrCatalogNotFound indicates no catalog file matched in any search directory
	ErrCatalogNotFound = core.ErrCatalogNotFound

	// ErrSyncFailed indicates the package lists could not be synchronized
	ErrSyncFailed = core.ErrSyncFailed

	// ErrCommandFailed indicates an external command exited with an error
	ErrCommandFailed = core.ErrCommandFailed

	// ErrToolMissing indicates a required host command is not installed
	ErrToolMissing = core.ErrToolMissing
)

// Error wraps an error with the operation and package it concerns
type Error = core.Error
