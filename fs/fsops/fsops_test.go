package fsops

import (
	"bytes"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/billy"
	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// env is one backend under test, rooted at an empty working directory.
type env struct {
	ops       *FS
	root      fspath.Path
	local     bool
	hardLinks bool
}

func (e env) p(elems ...string) fspath.Path {
	return e.root.Join(elems...)
}

// forEachBackend runs fn against a memory backend and, inside a fresh
// temporary working directory, the local backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, e env), opts ...Option) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, env{
			ops:  New(billy.NewMemory(billy.WithWorkingDir("/work")), opts...),
			root: fspath.New("/work"),
		})
	})

	t.Run("local", func(t *testing.T) {
		dir := t.TempDir()
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
		}
		t.Chdir(dir)
		root, err := fspath.FromNative(dir)
		require.NoError(t, err)
		fn(t, env{
			ops:       New(billy.NewLocal(), opts...),
			root:      root,
			local:     true,
			hardLinks: runtime.GOOS != "windows",
		})
	})
}

func needSymlinks(t *testing.T, e env) {
	t.Helper()
	if e.local && runtime.GOOS == "windows" {
		t.Skip("symbolic links need elevated privileges on windows")
	}
}

func writeFile(t *testing.T, e env, p fspath.Path, data string) {
	t.Helper()
	content, ok := e.ops.Backend().(core.ContentFS)
	require.True(t, ok, "backend does not implement core.ContentFS")
	require.NoError(t, content.WriteFile(p.Native(), []byte(data), 0o644))
}

func readFile(t *testing.T, e env, p fspath.Path) string {
	t.Helper()
	content, ok := e.ops.Backend().(core.ContentFS)
	require.True(t, ok, "backend does not implement core.ContentFS")
	data, err := content.ReadFile(p.Native())
	require.NoError(t, err)
	return string(data)
}

func mkdirs(t *testing.T, e env, p fspath.Path) {
	t.Helper()
	_, err := e.ops.CreateDirectories(p)
	require.NoError(t, err)
}

func symlink(t *testing.T, e env, target string, link fspath.Path) {
	t.Helper()
	needSymlinks(t, e)
	require.NoError(t, e.ops.CreateSymlink(fspath.New(target), link))
}

func requireCode(t *testing.T, err error, want errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, want, fe.Code(), "error: %v", err)
	assert.Equal(t, want, errors.GetCode(err))
}

func TestNew_Defaults(t *testing.T) {
	ops := New(billy.NewMemory())
	assert.NotNil(t, ops.Backend())
	assert.NotNil(t, ops.opts.Logger)
	assert.NotNil(t, ops.opts.Random)
	assert.Equal(t, DefaultMaxSymlinkDepth, ops.opts.MaxSymlinkDepth)

	ops = New(billy.NewMemory(), WithMaxSymlinkDepth(-3))
	assert.Equal(t, DefaultMaxSymlinkDepth, ops.opts.MaxSymlinkDepth)
}

func TestError(t *testing.T) {
	ops := New(billy.NewMemory())
	target := fspath.New("/missing/dir")

	created, err := ops.CreateDirectory(target)
	assert.False(t, created)
	requireCode(t, err, errors.CodeNotFound)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "CreateDirectory", fe.Op)
	assert.True(t, fe.Path1.Equal(target))
	assert.True(t, fe.Path2.Empty())
	assert.True(t, errors.Is(err, fs.ErrNotExist), "backend cause should stay reachable")
	assert.Contains(t, err.Error(), `CreateDirectory "/missing/dir"`)
	assert.Contains(t, err.Error(), "NOT_FOUND")

	ctx := fe.Err.Context()
	assert.Equal(t, "CreateDirectory", ctx["operation"])
	assert.Equal(t, "/missing/dir", ctx["path1"])
	assert.NotContains(t, ctx, "path2")
}

func TestError_TwoPaths(t *testing.T) {
	ops := New(billy.NewMemory())

	err := ops.Rename(fspath.New("/a"), fspath.New("/b"))
	requireCode(t, err, errors.CodeNotFound)
	assert.Contains(t, err.Error(), `Rename "/a", "/b"`)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "/b", fe.Err.Context()["path2"])
}

func TestError_NotRetryable(t *testing.T) {
	ops := New(billy.NewMemory())
	_, err := ops.FileSize(fspath.New("/nope"))
	require.Error(t, err)
	assert.False(t, errors.IsRetryable(err))
}

func TestInvalidPath(t *testing.T) {
	ops := New(billy.NewMemory())
	bad := fspath.New("a\x00b")

	exists, err := ops.Exists(bad)
	assert.False(t, exists)
	requireCode(t, err, errors.CodeInvalidArgument)

	requireCode(t, ops.Rename(fspath.New("/ok"), bad), errors.CodeInvalidArgument)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ops := New(billy.NewMemory(), WithLogger(logger))

	_, err := ops.CreateDirectory(fspath.New("/a/b"))
	require.Error(t, err)
	_, err = ops.CreateDirectory(fspath.New("/ok"))
	require.NoError(t, err)
	_, err = ops.Exists(fspath.New("/ok"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "queries are not logged: %s", buf.String())
	assert.Contains(t, lines[0], `"msg":"operation failed"`)
	assert.Contains(t, lines[0], `"op":"CreateDirectory"`)
	assert.Contains(t, lines[0], `"path":"/a/b"`)
	assert.Contains(t, lines[0], `"code":"NOT_FOUND"`)
	assert.Contains(t, lines[1], `"msg":"operation completed"`)
	assert.Contains(t, lines[1], `"path":"/ok"`)
}
