package billy

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// LocalFS is the host operating system's filesystem, accessed through
// billy's osfs. Relative names resolve against the process working
// directory.
type LocalFS struct {
	bfs Storage
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(_ ...Option) *LocalFS {
	return &LocalFS{bfs: osfs.Default}
}

// Unwrap returns the underlying billy storage.
func (lfs *LocalFS) Unwrap() Storage {
	return lfs.bfs
}

// Stat returns file info for name, following symbolic links.
func (lfs *LocalFS) Stat(name string) (fs.FileInfo, error) {
	return lfs.bfs.Stat(name)
}

// Lstat returns file info for name without following a final link.
func (lfs *LocalFS) Lstat(name string) (fs.FileInfo, error) {
	return lfs.bfs.Lstat(name)
}

// Readlink returns the destination of the named symbolic link.
func (lfs *LocalFS) Readlink(name string) (string, error) {
	return lfs.bfs.Readlink(name)
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (lfs *LocalFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := lfs.bfs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	return dirEntries(infos), nil
}

// LinkCount returns the number of hard links to name.
func (lfs *LocalFS) LinkCount(name string) (uint64, error) {
	return linkCount(name)
}

// Mkdir creates a single directory. Unlike MkdirAll, this fails if the
// parent directory does not exist or name is already taken. osfs only
// offers MkdirAll, which reports success for an existing directory.
func (lfs *LocalFS) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}

// Symlink creates a symbolic link named link pointing at target.
func (lfs *LocalFS) Symlink(target, link string) error {
	if _, err := lfs.bfs.Lstat(link); err == nil {
		return &fs.PathError{Op: "symlink", Path: link, Err: core.ErrExist}
	}
	if err := lfs.requireParent("symlink", link); err != nil {
		return err
	}
	return lfs.bfs.Symlink(target, link)
}

// Link creates a hard link named link to target.
func (lfs *LocalFS) Link(target, link string) error {
	return os.Link(target, link)
}

// CopyFile copies the regular file from into the new file to.
func (lfs *LocalFS) CopyFile(from, to string) error {
	info, err := lfs.bfs.Stat(from)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: from, Err: core.ErrIsDir}
	}
	if err := lfs.requireParent("copy", to); err != nil {
		return err
	}
	return copyContents(lfs.bfs, from, to, info.Mode().Perm())
}

// Truncate changes the size of the named file.
func (lfs *LocalFS) Truncate(name string, size int64) error {
	return truncate(lfs.bfs, name, size)
}

// Chtimes changes the access and modification times of the named file.
func (lfs *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	if ch, ok := lfs.bfs.(billy.Change); ok {
		return ch.Chtimes(name, atime, mtime)
	}
	return os.Chtimes(name, atime, mtime)
}

// Remove removes a file, a symbolic link or an empty directory.
func (lfs *LocalFS) Remove(name string) error {
	return lfs.bfs.Remove(name)
}

// Rename moves from to to.
func (lfs *LocalFS) Rename(from, to string) error {
	if err := lfs.requireParent("rename", to); err != nil {
		return err
	}
	return lfs.bfs.Rename(from, to)
}

// SameFile reports whether a and b resolve to the same file.
func (lfs *LocalFS) SameFile(a, b string) (bool, error) {
	ai, err := lfs.bfs.Stat(a)
	if err != nil {
		return false, err
	}
	bi, err := lfs.bfs.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ai, bi), nil
}

// Space reports the capacity of the volume containing name.
func (lfs *LocalFS) Space(name string) (core.SpaceInfo, error) {
	return space(name)
}

// Getwd returns the process working directory.
func (lfs *LocalFS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the process working directory.
func (lfs *LocalFS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// Code maps operating system errors to the taxonomy, falling back to the
// shared sentinels.
func (lfs *LocalFS) Code(err error) errors.ErrorCode {
	if code, ok := errnoCode(err); ok {
		return code
	}
	return core.CodeOf(err)
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// ReadFile reads the named file and returns its contents.
func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(lfs.bfs, name)
}

// WriteFile writes data to the named file, creating it if necessary.
func (lfs *LocalFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(lfs.bfs, name, data, perm)
}

// MkdirAll creates a directory and any missing parents.
func (lfs *LocalFS) MkdirAll(name string, perm fs.FileMode) error {
	return lfs.bfs.MkdirAll(name, perm)
}

// requireParent fails unless the directory that would contain name exists.
// osfs creates missing parents implicitly on create and rename.
func (lfs *LocalFS) requireParent(op, name string) error {
	parent := filepath.Dir(filepath.Clean(name))
	info, err := lfs.bfs.Stat(parent)
	if err != nil {
		return pathErr(op, name, err)
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotDir}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.Backend   = (*LocalFS)(nil)
	_ core.ContentFS = (*LocalFS)(nil)
	_ Storage        = osfs.Default
)
