// internal/importer/errors.go
package importer

import "errors"

var (
	// ErrCopyFailed indicates the file copy operation failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrRemoveFailed indicates a stale destination file could not be removed.
	ErrRemoveFailed = errors.New("failed to remove stale destination")

	// ErrCreateDir indicates a show or season directory could not be created.
	ErrCreateDir = errors.New("failed to create destination directory")

	// ErrDestinationExists indicates the destination file already exists.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrPathTraversal indicates a destination would escape the library root.
	ErrPathTraversal = errors.New("path traversal detected")
)
