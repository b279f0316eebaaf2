// Package sysdir resolves the platform's system scratch directory:
// the default location for temporary files and directories.
//
// On POSIX systems, this is $TMPDIR, falling back to /tmp.
// On Windows, it's the result of the GetTempPath system call.
//
// Resolution is pure path computation:
// it does not check that the directory exists,
// and it consults the current environment on every call.
package sysdir

import (
	"errors"
	"fmt"
	"os"
)

// Errors reported by the Windows resolution path.
// Declared unconditionally so that callers can match them
// without build tags of their own.
var (
	// ErrNameTooLong indicates that the scratch directory path
	// does not fit the largest buffer the platform API supports.
	ErrNameTooLong = errors.New("scratch directory path too long")

	// ErrUnexpected indicates that the platform API failed
	// without reporting a cause.
	ErrUnexpected = errors.New("unexpected OS error")
)

// Path returns the absolute path of the system scratch directory.
//
// The directory is not guaranteed to exist.
func Path() (string, error) {
	return path()
}

// Open resolves the system scratch directory
// and opens a handle to it.
//
// The caller owns the returned handle and must close it.
func Open() (*os.Root, error) {
	dir, err := Path()
	if err != nil {
		return nil, fmt.Errorf("resolve scratch directory: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", dir, err)
	}

	return root, nil
}
