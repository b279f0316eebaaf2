package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.abhg.dev/fs/scratch/internal/namegen"
)

// Dir is a uniquely-named temporary directory.
//
// Create one with [NewDir] and release it with [Dir.Remove].
// The zero value is not usable.
type Dir struct {
	parent parentDir
	name   string
	keep   bool
	log    *slog.Logger
}

// NewDir creates a new, empty, uniquely-named directory
// and returns a handle to it.
//
// opts may be nil, in which case the directory is created
// under the system scratch directory with a random name.
//
// The directory exists when NewDir returns,
// and did not exist immediately before the call.
func NewDir(opts *Options) (*Dir, error) {
	o := opts.normalize()
	gen := namegen.New(o.Pattern, o.MaxAttempts)

	parent, err := resolveParent(&o)
	if err != nil {
		return nil, fmt.Errorf("resolve parent directory: %w", err)
	}

	name, err := claim(gen, func(name string) error {
		return parent.root.Mkdir(name, 0o700)
	})
	if err != nil {
		parent.release(o.Log)
		return nil, fmt.Errorf("create directory: %w", err)
	}

	return &Dir{
		parent: parent,
		name:   name,
		keep:   o.Keep,
		log:    o.Log,
	}, nil
}

// Name returns the directory's basename,
// relative to its parent directory.
func (d *Dir) Name() string { return d.name }

// Path returns the full path of the directory.
func (d *Dir) Path() string {
	return filepath.Join(d.parent.root.Name(), d.name)
}

// Open returns a fresh handle to the directory.
// The caller owns the handle and must close it.
//
// Open does not modify the Dir
// and may be called concurrently from multiple goroutines.
func (d *Dir) Open() (*os.Root, error) {
	root, err := d.parent.root.OpenRoot(d.name)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", d.name, err)
	}
	return root, nil
}

// Remove deletes the directory and everything inside it,
// unless the Dir was created with [Options.Keep].
//
// Deletion is best-effort:
// failures are reported to [Options.Log] and otherwise discarded,
// because Remove is intended for deferred cleanup paths
// that have no way to propagate an error.
// This can leave the directory behind if, for example,
// another process holds an open handle into it on some platforms.
//
// Remove must be called exactly once.
// The Dir must not be used afterwards.
func (d *Dir) Remove() {
	if !d.keep {
		if err := d.parent.root.RemoveAll(d.name); err != nil {
			d.log.Warn("scratch: error removing directory",
				"dir", d.name, "error", err)
		}
	}
	d.parent.release(d.log)
	d.name = ""
}
