// Package scratch creates uniquely-named temporary directories and
// files that clean up after themselves.
//
// Artifacts are named by expanding a pattern with a random token,
// and claimed with the operating system's atomic create-if-absent
// primitives. Any number of goroutines or processes may create
// artifacts under the same parent directory concurrently
// without coordination.
//
// Use [NewDir] and [NewFile] to create artifacts,
// and release them with their Remove methods when done:
//
//	dir, err := scratch.NewDir(nil)
//	if err != nil {
//		return err
//	}
//	defer dir.Remove()
//
// Unpredictable names are not a substitute for access control:
// anyone with write access to the parent directory
// can still interfere with the artifact.
package scratch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"go.abhg.dev/fs/scratch/internal/namegen"
	"go.abhg.dev/fs/scratch/internal/sysdir"
)

// DefaultMaxAttempts is the number of candidate names a create call
// tries before giving up, if [Options.MaxAttempts] is unset.
const DefaultMaxAttempts = 1000

// ErrNameExhausted indicates that a create call ran out of candidate
// names: every name it tried already existed.
//
// This needs sustained contention on the parent directory to happen,
// or a pattern whose random namespace is too small.
//
// The error matches [fs.ErrExist] in errors.Is.
var ErrNameExhausted = fmt.Errorf("could not find a unique name: %w", fs.ErrExist)

// Options configures creation of a temporary directory or file.
// The zero value is a valid configuration.
type Options struct {
	// Parent is the directory to create the artifact in.
	//
	// If set, the handle is borrowed:
	// the resource uses it but never closes it.
	// If unset, the system scratch directory is resolved
	// and opened, and that handle is closed on Remove.
	Parent *os.Root

	// Pattern determines the artifact's basename.
	// The last '*' in the pattern is replaced with a random token.
	// If there is no '*', the token is appended to the pattern.
	//
	// The pattern must not contain a path separator;
	// passing one is a programmer error and panics.
	//
	// Defaults to "*": a bare random token.
	Pattern string

	// Keep leaves the artifact in place on Remove.
	Keep bool

	// MaxAttempts bounds how many candidate names a create call
	// tries before failing with [ErrNameExhausted].
	//
	// Defaults to [DefaultMaxAttempts].
	MaxAttempts int

	// Log receives diagnostics from cleanup failures,
	// which Remove otherwise swallows.
	//
	// Defaults to discarding them.
	Log *slog.Logger
}

// normalize fills in defaults, leaving o unchanged.
// o may be nil.
func (o *Options) normalize() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Pattern == "" {
		opts.Pattern = "*"
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	return opts
}

// parentDir couples a directory handle
// with the obligation (or not) to release it.
type parentDir struct {
	root *os.Root

	// owned is true if the handle was opened by this package
	// and must be closed when the resource is removed.
	// Borrowed handles are left alone.
	owned bool
}

// resolveParent returns the directory to create an artifact in:
// the caller-supplied handle if there is one,
// or a freshly opened handle to the system scratch directory.
func resolveParent(opts *Options) (parentDir, error) {
	if opts.Parent != nil {
		return parentDir{root: opts.Parent}, nil
	}

	root, err := sysdir.Open()
	if err != nil {
		return parentDir{}, err
	}
	return parentDir{root: root, owned: true}, nil
}

// release closes the handle if it is owned.
// Close failures are reported to log and discarded.
func (p parentDir) release(log *slog.Logger) {
	if !p.owned {
		return
	}

	if err := p.root.Close(); err != nil {
		log.Warn("scratch: error closing parent directory",
			"dir", p.root.Name(), "error", err)
	}
}

// claim drives gen until create accepts a candidate name,
// and returns the claimed name.
//
// create must use an atomic create-if-absent operation,
// failing with an error matching [fs.ErrExist] if the name is taken.
// Taken names move on to the next candidate;
// any other error stops the claim immediately.
func claim(gen *namegen.Generator, create func(name string) error) (string, error) {
	for {
		name, ok := gen.Next()
		if !ok {
			return "", ErrNameExhausted
		}

		switch err := create(name); {
		case err == nil:
			return name, nil
		case errors.Is(err, fs.ErrExist):
			// Somebody beat us to this name.
			// Expected under contention; try the next one.
		default:
			return "", err
		}
	}
}
