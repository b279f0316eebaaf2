package scratch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.abhg.dev/fs/scratch/internal/namegen"
)

// File is a uniquely-named temporary file.
//
// Create one with [NewFile] and release it with [File.Remove].
// The zero value is not usable.
//
// A File records the artifact's identity, not an open handle:
// use [File.Open] to read or write its contents.
type File struct {
	parent parentDir
	name   string
	keep   bool
	log    *slog.Logger
}

// NewFile creates a new, empty, uniquely-named file
// and returns a handle to its identity.
//
// opts may be nil, in which case the file is created
// under the system scratch directory with a random name.
//
// The file exists when NewFile returns,
// and did not exist immediately before the call.
func NewFile(opts *Options) (*File, error) {
	o := opts.normalize()
	gen := namegen.New(o.Pattern, o.MaxAttempts)

	parent, err := resolveParent(&o)
	if err != nil {
		return nil, fmt.Errorf("resolve parent directory: %w", err)
	}

	name, err := claim(gen, func(name string) error {
		f, err := parent.root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err != nil {
			return err
		}

		// Only the identity is retained.
		// Don't leave the file behind if the close fails.
		if err := f.Close(); err != nil {
			return errors.Join(err, parent.root.Remove(name))
		}
		return nil
	})
	if err != nil {
		parent.release(o.Log)
		return nil, fmt.Errorf("create file: %w", err)
	}

	return &File{
		parent: parent,
		name:   name,
		keep:   o.Keep,
		log:    o.Log,
	}, nil
}

// Name returns the file's basename,
// relative to its parent directory.
func (f *File) Name() string { return f.name }

// Path returns the full path of the file.
func (f *File) Path() string {
	return filepath.Join(f.parent.root.Name(), f.name)
}

// Open opens the file with the given flag (os.O_RDONLY, os.O_RDWR, ...)
// and returns the handle. The caller owns the handle and must close it.
//
// Open does not modify the File
// and may be called concurrently from multiple goroutines.
func (f *File) Open(flag int) (*os.File, error) {
	file, err := f.parent.root.OpenFile(f.name, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", f.name, err)
	}
	return file, nil
}

// Remove deletes the file,
// unless the File was created with [Options.Keep].
//
// Deletion is best-effort:
// failures are reported to [Options.Log] and otherwise discarded,
// because Remove is intended for deferred cleanup paths
// that have no way to propagate an error.
//
// Remove must be called exactly once.
// The File must not be used afterwards.
func (f *File) Remove() {
	if !f.keep {
		if err := f.parent.root.Remove(f.name); err != nil {
			f.log.Warn("scratch: error removing file",
				"file", f.name, "error", err)
		}
	}
	f.parent.release(f.log)
	f.name = ""
}
