// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable indicates a package index or status file could not be read
	ErrSourceUnreadable = errors.New("package source unreadable")

	// ErrCatalogNotFound indicates no catalog file matched in any search directory
	ErrCatalogNotFound = errors.New("list of ISP packages not found")

	// ErrSyncFailed indicates the package lists could not be synchronized
	ErrSyncFailed = errors.New("package list synchronization failed")

	// ErrCommandFailed indicates an external command exited with an error
	ErrCommandFailed = errors.New("command failed")

	// ErrToolMissing indicates a required host command is not installed
	ErrToolMissing = errors.New("required tool not found")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
