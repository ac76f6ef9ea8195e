package fsops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/errors"
)

func TestRemove(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "x")
		mkdirs(t, e, e.p("full"))
		writeFile(t, e, e.p("full", "f"), "x")

		removed, err := e.ops.Remove(e.p("file"))
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = e.ops.Remove(e.p("file"))
		require.NoError(t, err)
		assert.False(t, removed)

		removed, err = e.ops.Remove(e.p("full"))
		assert.False(t, removed)
		requireCode(t, err, errors.CodeDirectoryNotEmpty)
	})
}

func TestRemove_Nonexistent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		removed, err := e.ops.Remove(e.root.Join("nonexistent"))
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestRemove_SymlinkKeepsTarget(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("target"), "x")
		symlink(t, e, "target", e.p("link"))

		removed, err := e.ops.Remove(e.p("link"))
		require.NoError(t, err)
		assert.True(t, removed)

		exists, err := e.ops.Exists(e.p("target"))
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestRemoveAll(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		mkdirs(t, e, e.p("tree", "d"))
		writeFile(t, e, e.p("tree", "a"), "x")
		writeFile(t, e, e.p("tree", "d", "b"), "x")
		mkdirs(t, e, e.p("outside"))
		writeFile(t, e, e.p("outside", "keep"), "x")
		symlink(t, e, "../outside", e.p("tree", "link"))

		n, err := e.ops.RemoveAll(e.p("tree"))
		require.NoError(t, err)
		assert.Equal(t, uint64(5), n)

		exists, err := e.ops.Exists(e.p("tree"))
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = e.ops.Exists(e.p("outside", "keep"))
		require.NoError(t, err)
		assert.True(t, exists, "symbolic links are not followed")

		n, err = e.ops.RemoveAll(e.p("tree"))
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = e.ops.RemoveAll(e.p("outside", "keep"))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)
	})
}

func TestRename(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("a"), "data")
		before := e.p("a")
		if e.hardLinks {
			require.NoError(t, e.ops.CreateHardLink(e.p("a"), e.p("h")))
			before = e.p("h")
		}

		require.NoError(t, e.ops.Rename(e.p("a"), e.p("b")))

		exists, err := e.ops.Exists(e.p("a"))
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = e.ops.Exists(e.p("b"))
		require.NoError(t, err)
		assert.True(t, exists)

		if e.hardLinks {
			same, err := e.ops.Equivalent(before, e.p("b"))
			require.NoError(t, err)
			assert.True(t, same)
		}
		assert.Equal(t, "data", readFile(t, e, e.p("b")))
	})
}

func TestRename_Failures(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "x")
		mkdirs(t, e, e.p("full"))
		mkdirs(t, e, e.p("dir"))
		writeFile(t, e, e.p("full", "f"), "x")

		requireCode(t, e.ops.Rename(e.p("missing"), e.p("x")), errors.CodeNotFound)
		requireCode(t, e.ops.Rename(e.p("file"), e.p("nodir", "x")), errors.CodeNotFound)

		err := e.ops.Rename(e.p("dir"), e.p("full"))
		require.Error(t, err)
		var fe *Error
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, []errors.ErrorCode{errors.CodeDirectoryNotEmpty, errors.CodeAlreadyExists}, fe.Code())
	})
}
