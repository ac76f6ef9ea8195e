package fsops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

func TestStatus(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "data")
		mkdirs(t, e, e.p("dir"))

		tests := []struct {
			name string
			path fspath.Path
			want core.FileType
		}{
			{"regular file", e.p("file"), core.RegularFile},
			{"directory", e.p("dir"), core.DirectoryFile},
			{"trailing separator", e.p("dir").Concat("/"), core.DirectoryFile},
			{"missing", e.p("missing"), core.FileNotFound},
			{"below a file", e.p("file", "x"), core.FileNotFound},
			{"file with trailing separator", e.p("file").Concat("/"), core.FileNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				st, err := e.ops.Status(tt.path)
				require.NoError(t, err)
				assert.Equal(t, tt.want, st.Type)
				assert.True(t, st.StatusKnown())
			})
		}
	})
}

func TestStatus_FollowsSymlinks(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("target"), "data")
		symlink(t, e, "target", e.p("link"))
		symlink(t, e, "nowhere", e.p("dangling"))

		st, err := e.ops.Status(e.p("link"))
		require.NoError(t, err)
		assert.Equal(t, core.RegularFile, st.Type)

		st, err = e.ops.SymlinkStatus(e.p("link"))
		require.NoError(t, err)
		assert.Equal(t, core.SymlinkFile, st.Type)

		st, err = e.ops.Status(e.p("link").Concat("/"))
		require.NoError(t, err)
		assert.Equal(t, core.FileNotFound, st.Type, "a trailing separator needs a directory")

		st, err = e.ops.Status(e.p("dangling"))
		require.NoError(t, err)
		assert.Equal(t, core.FileNotFound, st.Type)

		isLink, err := e.ops.IsSymlink(e.p("link"))
		require.NoError(t, err)
		assert.True(t, isLink)

		isFile, err := e.ops.IsRegularFile(e.p("link"))
		require.NoError(t, err)
		assert.True(t, isFile)
	})
}

func TestStatus_SymlinkDepth(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("target"), "data")
		symlink(t, e, "target", e.p("l1"))
		symlink(t, e, "l1", e.p("l2"))
		symlink(t, e, "l2", e.p("l3"))

		st, err := e.ops.Status(e.p("l2"))
		require.NoError(t, err)
		assert.Equal(t, core.RegularFile, st.Type)

		st, err = e.ops.Status(e.p("l3"))
		requireCode(t, err, errors.CodeTooManySymlinks)
		assert.Equal(t, core.StatusError, st.Type)
		assert.False(t, st.StatusKnown())
	}, WithMaxSymlinkDepth(2))
}

func TestStatus_SymlinkLoop(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		symlink(t, e, "self", e.p("self"))

		_, err := e.ops.Status(e.p("self"))
		requireCode(t, err, errors.CodeTooManySymlinks)

		exists, err := e.ops.Exists(e.p("self"))
		assert.False(t, exists)
		requireCode(t, err, errors.CodeTooManySymlinks)

		st, err := e.ops.SymlinkStatus(e.p("self"))
		require.NoError(t, err)
		assert.True(t, st.IsSymlink())
	})
}

func TestExists(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "")

		exists, err := e.ops.Exists(e.p("file"))
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = e.ops.Exists(e.p("missing"))
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = e.ops.Exists(e.p("file").Concat("/"))
		require.NoError(t, err)
		assert.False(t, exists, "a regular file is not a directory")

		exists, err = e.ops.Exists(fspath.New("file"))
		require.NoError(t, err)
		assert.True(t, exists, "relative paths resolve against the current directory")
	})
}

func TestTypePredicates(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "")
		mkdirs(t, e, e.p("dir"))

		isDir, err := e.ops.IsDirectory(e.p("dir"))
		require.NoError(t, err)
		assert.True(t, isDir)

		isDir, err = e.ops.IsDirectory(e.p("file"))
		require.NoError(t, err)
		assert.False(t, isDir)

		isOther, err := e.ops.IsOther(e.p("file"))
		require.NoError(t, err)
		assert.False(t, isOther)

		isOther, err = e.ops.IsOther(e.p("missing"))
		require.NoError(t, err)
		assert.False(t, isOther)
	})
}

func TestIsEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		mkdirs(t, e, e.p("empty"))
		mkdirs(t, e, e.p("full"))
		writeFile(t, e, e.p("full", "f"), "x")
		writeFile(t, e, e.p("zero"), "")

		for name, want := range map[string]bool{
			"empty":  true,
			"full":   false,
			"zero":   true,
			"full/f": false,
		} {
			got, err := e.ops.IsEmpty(e.p(name))
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}

		_, err := e.ops.IsEmpty(e.p("missing"))
		requireCode(t, err, errors.CodeNotFound)
	})
}

func TestFileSize(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "hello")
		mkdirs(t, e, e.p("dir"))

		size, err := e.ops.FileSize(e.p("file"))
		require.NoError(t, err)
		assert.Equal(t, uint64(5), size)

		size, err = e.ops.FileSize(e.p("dir"))
		assert.Zero(t, size)
		requireCode(t, err, errors.CodeIsADirectory)

		_, err = e.ops.FileSize(e.p("missing"))
		requireCode(t, err, errors.CodeNotFound)
	})
}

func TestResizeFile(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "hello")

		require.NoError(t, e.ops.ResizeFile(e.p("file"), 2))
		assert.Equal(t, "he", readFile(t, e, e.p("file")))

		require.NoError(t, e.ops.ResizeFile(e.p("file"), 4))
		assert.Equal(t, "he\x00\x00", readFile(t, e, e.p("file")))

		requireCode(t, e.ops.ResizeFile(e.p("missing"), 1), errors.CodeNotFound)
	})
}

func TestLastWriteTime(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "x")
		mtime := time.Unix(1_000_000_000, 0)

		require.NoError(t, e.ops.SetLastWriteTime(e.p("file"), mtime))
		got, err := e.ops.LastWriteTime(e.p("file"))
		require.NoError(t, err)
		assert.True(t, got.Equal(mtime), "LastWriteTime() = %v, want %v", got, mtime)

		requireCode(t, e.ops.SetLastWriteTime(e.p("missing"), mtime), errors.CodeNotFound)
		_, err = e.ops.LastWriteTime(e.p("missing"))
		requireCode(t, err, errors.CodeNotFound)
	})
}

func TestHardLinkCount(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "x")

		n, err := e.ops.HardLinkCount(e.p("file"))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)

		err = e.ops.CreateHardLink(e.p("file"), e.p("link"))
		if !e.hardLinks {
			requireCode(t, err, errors.CodeNotSupported)
			return
		}
		require.NoError(t, err)
		n, err = e.ops.HardLinkCount(e.p("file"))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), n)

		requireCode(t, e.ops.CreateHardLink(e.p("file"), e.p("link")), errors.CodeAlreadyExists)
	})
}

func TestReadSymlink(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		writeFile(t, e, e.p("file"), "x")
		symlink(t, e, "some/where", e.p("link"))

		target, err := e.ops.ReadSymlink(e.p("link"))
		require.NoError(t, err)
		assert.Equal(t, "some/where", target.String())

		_, err = e.ops.ReadSymlink(e.p("file"))
		requireCode(t, err, errors.CodeInvalidArgument)
	})
}

func TestSpace(t *testing.T) {
	forEachBackend(t, func(t *testing.T, e env) {
		info, err := e.ops.Space(e.root)
		if e.local && errors.HasCode(err, errors.CodeNotSupported) {
			t.Skip("volume queries are not supported on this platform")
		}
		require.NoError(t, err)
		assert.NotZero(t, info.Capacity)
		assert.LessOrEqual(t, info.Available, info.Capacity)

		info, err = e.ops.Space(e.p("missing"))
		assert.Equal(t, core.SpaceInfo{}, info)
		requireCode(t, err, errors.CodeNotFound)
	})
}
