package fsops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

func entryNames(t *testing.T, e env, dir string) []string {
	t.Helper()
	entries, err := e.ops.Backend().ReadDir(e.p(dir).Native())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestCopyFile(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		mkdirs(t, e, e.p("d"))
		writeFile(t, e, e.p("d", "a"), "longer contents")
		writeFile(t, e, e.p("d", "b"), "short")

		err := e.ops.CopyFile(e.p("d", "a"), e.p("d", "b"), FailIfExists)
		requireCode(t, err, errors.CodeAlreadyExists)
		assert.Equal(t, "short", readFile(t, e, e.p("d", "b")))

		require.NoError(t, e.ops.CopyFile(e.p("d", "a"), e.p("d", "b"), OverwriteIfExists))
		sizeA, err := e.ops.FileSize(e.p("d", "a"))
		require.NoError(t, err)
		sizeB, err := e.ops.FileSize(e.p("d", "b"))
		require.NoError(t, err)
		assert.Equal(t, sizeA, sizeB)
		assert.Equal(t, "longer contents", readFile(t, e, e.p("d", "b")))
		assert.Equal(t, []string{"a", "b"}, entryNames(t, e, "d"), "no temporary files are left behind")

		require.NoError(t, e.ops.CopyFile(e.p("d", "a"), e.p("d", "c"), OverwriteIfExists))
		assert.Equal(t, "longer contents", readFile(t, e, e.p("d", "c")))
	})
}

func TestCopyFile_Failures(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("a"), "x")
		mkdirs(t, e, e.p("dir"))

		requireCode(t, e.ops.CopyFile(e.p("missing"), e.p("b"), FailIfExists), errors.CodeNotFound)
		requireCode(t, e.ops.CopyFile(e.p("missing"), e.p("a"), OverwriteIfExists), errors.CodeNotFound)
		requireCode(t, e.ops.CopyFile(e.p("a"), e.p("dir"), OverwriteIfExists), errors.CodeIsADirectory)
		requireCode(t, e.ops.CopyFile(e.p("a"), e.p("nodir", "b"), FailIfExists), errors.CodeNotFound)
	})
}

func TestCopyFile_OverwriteThroughSymlink(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("src"), "new")
		writeFile(t, e, e.p("real"), "old")
		symlink(t, e, "real", e.p("link"))

		require.NoError(t, e.ops.CopyFile(e.p("src"), e.p("link"), OverwriteIfExists))

		isLink, err := e.ops.IsSymlink(e.p("link"))
		require.NoError(t, err)
		assert.True(t, isLink, "the destination link is kept")
		assert.Equal(t, "new", readFile(t, e, e.p("real")))
		assert.Equal(t, []string{"link", "real", "src"}, entryNames(t, e, "."))
	})
}

func TestCopyFile_OntoItself(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("a"), "data")
		symlink(t, e, "a", e.p("alias"))

		requireCode(t, e.ops.CopyFile(e.p("a"), e.p("a"), OverwriteIfExists), errors.CodeInvalidArgument)
		requireCode(t, e.ops.CopyFile(e.p("a"), e.p("alias"), OverwriteIfExists), errors.CodeInvalidArgument)
		requireCode(t, e.ops.CopyFile(e.p("a"), e.p("a"), FailIfExists), errors.CodeAlreadyExists)
		assert.Equal(t, "data", readFile(t, e, e.p("a")))
	})
}

func TestCopyOption_String(t *testing.T) {
	assert.Equal(t, "fail_if_exists", FailIfExists.String())
	assert.Equal(t, "overwrite_if_exists", OverwriteIfExists.String())
	assert.Equal(t, "unknown", CopyOption(9).String())
}

func TestCopyDirectory(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		mkdirs(t, e, e.p("src", "child"))
		writeFile(t, e, e.p("file"), "x")

		require.NoError(t, e.ops.CopyDirectory(e.p("src"), e.p("dst")))
		empty, err := e.ops.IsEmpty(e.p("dst"))
		require.NoError(t, err)
		assert.True(t, empty, "entries are not copied")

		requireCode(t, e.ops.CopyDirectory(e.p("src"), e.p("dst")), errors.CodeAlreadyExists)
		requireCode(t, e.ops.CopyDirectory(e.p("file"), e.p("other")), errors.CodeNotADirectory)
	})
}

func TestCopySymlink(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		symlink(t, e, "target", e.p("link"))

		require.NoError(t, e.ops.CopySymlink(e.p("link"), e.p("copy")))
		target, err := e.ops.ReadSymlink(e.p("copy"))
		require.NoError(t, err)
		assert.Equal(t, "target", target.String())
	})
}

func TestCopy_DispatchesOnType(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "data")
		mkdirs(t, e, e.p("dir", "child"))
		symlink(t, e, "file", e.p("link"))

		require.NoError(t, e.ops.Copy(e.p("file"), e.p("file2")))
		assert.Equal(t, "data", readFile(t, e, e.p("file2")))

		require.NoError(t, e.ops.Copy(e.p("dir"), e.p("dir2")))
		st, err := e.ops.Status(e.p("dir2", "child"))
		require.NoError(t, err)
		assert.Equal(t, core.FileNotFound, st.Type, "directories are not copied recursively")

		require.NoError(t, e.ops.Copy(e.p("link"), e.p("link2")))
		isLink, err := e.ops.IsSymlink(e.p("link2"))
		require.NoError(t, err)
		assert.True(t, isLink)

		requireCode(t, e.ops.Copy(e.p("missing"), e.p("x")), errors.CodeNotFound)
		requireCode(t, e.ops.Copy(e.p("file"), e.p("file2")), errors.CodeAlreadyExists)
	})
}
