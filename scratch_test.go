package scratch

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/fs/scratch/internal/namegen"
)

func TestClaim_firstCandidate(t *testing.T) {
	var attempts int
	name, err := claim(namegen.New("x-*", 5), func(string) error {
		attempts++
		return nil
	})
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.Equal(t, 1, attempts)
}

func TestClaim_retriesOnCollision(t *testing.T) {
	var attempts int
	name, err := claim(namegen.New("x-*", 5), func(string) error {
		attempts++
		if attempts < 3 {
			return fs.ErrExist
		}
		return nil
	})
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.Equal(t, 3, attempts)
}

func TestClaim_exhaustsAttemptBudget(t *testing.T) {
	const limit = 7

	var attempts int
	_, err := claim(namegen.New("x-*", limit), func(string) error {
		attempts++
		return fs.ErrExist
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameExhausted)
	assert.ErrorIs(t, err, fs.ErrExist,
		"exhaustion must match the already-exists error class")
	assert.Equal(t, limit, attempts,
		"every candidate must be tried before giving up")
}

func TestClaim_stopsOnUnrelatedError(t *testing.T) {
	giveErr := errors.New("disk full")

	var attempts int
	_, err := claim(namegen.New("x-*", 100), func(string) error {
		attempts++
		return giveErr
	})
	assert.ErrorIs(t, err, giveErr,
		"unrelated errors must propagate without retry")
	assert.Equal(t, 1, attempts)
}

func TestOptions_normalizeDefaults(t *testing.T) {
	var nilOpts *Options
	opts := nilOpts.normalize()

	assert.Equal(t, "*", opts.Pattern)
	assert.Equal(t, DefaultMaxAttempts, opts.MaxAttempts)
	assert.NotNil(t, opts.Log)
}

func TestConcurrentCreateAndRemove(t *testing.T) {
	const (
		workers    = 10
		iterations = 100
	)

	parentPath := t.TempDir()
	parent, err := os.OpenRoot(parentPath)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, parent.Close())
	}()

	var ready, done sync.WaitGroup
	ready.Add(workers)
	done.Add(workers)
	for range workers {
		go func() {
			defer done.Done()

			ready.Done() // I'm ready.
			ready.Wait() // Is everyone else?

			for range iterations {
				dir, err := NewDir(&Options{
					Parent:  parent,
					Pattern: "worker-*",
				})
				if !assert.NoError(t, err) {
					continue
				}
				dir.Remove()
			}
		}()
	}
	done.Wait()

	entries, err := os.ReadDir(parentPath)
	require.NoError(t, err)
	assert.Empty(t, entries,
		"parent must hold no leftovers after all resources are released")
}
