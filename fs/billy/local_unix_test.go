//go:build unix

package billy

import (
	"io/fs"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// TestLocalFS_Code verifies raw errno values map into the taxonomy.
func TestLocalFS_Code(t *testing.T) {
	lfs := NewLocal()
	tests := []struct {
		errno unix.Errno
		want  errors.ErrorCode
	}{
		{unix.ENOENT, errors.CodeNotFound},
		{unix.EEXIST, errors.CodeAlreadyExists},
		{unix.EACCES, errors.CodePermissionDenied},
		{unix.ENOTDIR, errors.CodeNotADirectory},
		{unix.EISDIR, errors.CodeIsADirectory},
		{unix.ENOTEMPTY, errors.CodeDirectoryNotEmpty},
		{unix.ELOOP, errors.CodeTooManySymlinks},
		{unix.EXDEV, errors.CodeCrossDevice},
		{unix.EINVAL, errors.CodeInvalidArgument},
		{unix.EIO, errors.CodeIOError},
		{unix.EBADF, errors.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.errno.Error(), func(t *testing.T) {
			err := &fs.PathError{Op: "test", Path: "/x", Err: tt.errno}
			if got := lfs.Code(err); got != tt.want {
				t.Errorf("Code(%v) = %s, want %s", err, got, tt.want)
			}
		})
	}
}

// TestLocalFS_CodeFallsBackToSentinels verifies non-errno errors use the
// shared sentinel mapping.
func TestLocalFS_CodeFallsBackToSentinels(t *testing.T) {
	lfs := NewLocal()
	err := &fs.PathError{Op: "mkdir", Path: "/x", Err: core.ErrNotDir}
	if got := lfs.Code(err); got != errors.CodeNotADirectory {
		t.Errorf("Code(%v) = %s, want NOT_A_DIRECTORY", err, got)
	}
}

// TestLocalFS_MkdirExistingReportsErrno verifies Mkdir leaves detection of
// an existing entry to the kernel, so a directory created concurrently is
// reported as EEXIST rather than silently accepted.
func TestLocalFS_MkdirExistingReportsErrno(t *testing.T) {
	lfs := NewLocal()
	dir := filepath.Join(t.TempDir(), "d")

	if err := lfs.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	err := lfs.Mkdir(dir, 0o755)
	if !errors.Is(err, unix.EEXIST) {
		t.Fatalf("second Mkdir() error = %v, want EEXIST", err)
	}
	if got := lfs.Code(err); got != errors.CodeAlreadyExists {
		t.Errorf("Code() = %s, want ALREADY_EXISTS", got)
	}

	err = lfs.Mkdir(filepath.Join(dir, "missing", "child"), 0o755)
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("Mkdir() under missing parent error = %v, want ENOENT", err)
	}
}
