// Package scratchtest provides temporary directories and files
// for use in tests, with cleanup tied to the test's lifetime.
package scratchtest

import (
	"testing"

	"go.abhg.dev/fs/scratch"
)

// Dir creates a temporary directory that is removed
// when the test finishes.
//
// opts may be nil. Creation failure fails the test.
func Dir(t testing.TB, opts *scratch.Options) *scratch.Dir {
	t.Helper()

	dir, err := scratch.NewDir(opts)
	if err != nil {
		t.Fatalf("create scratch directory: %v", err)
	}
	t.Cleanup(dir.Remove)
	return dir
}

// File creates a temporary file that is removed
// when the test finishes.
//
// opts may be nil. Creation failure fails the test.
func File(t testing.TB, opts *scratch.Options) *scratch.File {
	t.Helper()

	file, err := scratch.NewFile(opts)
	if err != nil {
		t.Fatalf("create scratch file: %v", err)
	}
	t.Cleanup(file.Remove)
	return file
}
