// Package fsops provides the filesystem operations used by vlbuild.
//
// All filesystem access in vlbuild goes through the FS interface so the
// engine can be exercised against an in-memory implementation in tests.
//
// Key features:
//   - Create-or-truncate output streams that never create missing directories
//   - Lexically ordered directory listings for deterministic scans
//   - Testable via the FS interface
package fsops

import (
	"fmt"
	"io"
	"os"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Create opens path for writing, truncating any existing file.
	// The parent directory must already exist.
	Create(path string) (io.WriteCloser, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// ReadDir lists the entries of a directory sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Create opens path for writing, truncating any existing file.
func (fs *RealFS) Create(path string) (io.WriteCloser, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadDir lists the entries of a directory sorted by name.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}
