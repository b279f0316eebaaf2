package scratchtest_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/fs/scratch"
	"go.abhg.dev/fs/scratch/scratchtest"
)

func TestDir(t *testing.T) {
	parent, err := os.OpenRoot(t.TempDir())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, parent.Close())
	}()

	var name string
	t.Run("create", func(t *testing.T) {
		dir := scratchtest.Dir(t, &scratch.Options{Parent: parent})
		name = dir.Name()

		_, err := parent.Stat(name)
		assert.NoError(t, err)
	})

	// The subtest's cleanup has run by now.
	_, err = parent.Stat(name)
	assert.ErrorIs(t, err, os.ErrNotExist,
		"directory must be removed when the test finishes")
}

func TestFile(t *testing.T) {
	parent, err := os.OpenRoot(t.TempDir())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, parent.Close())
	}()

	var name string
	t.Run("create", func(t *testing.T) {
		file := scratchtest.File(t, &scratch.Options{Parent: parent})
		name = file.Name()

		_, err := parent.Stat(name)
		assert.NoError(t, err)
	})

	_, err = parent.Stat(name)
	assert.ErrorIs(t, err, os.ErrNotExist,
		"file must be removed when the test finishes")
}
