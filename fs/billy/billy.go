package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
)

// maxSymlinks bounds symbolic link expansion during a single resolution,
// matching the Linux ELOOP limit.
const maxSymlinks = 40

// Storage is the part of a billy filesystem the backends drive. osfs's
// ChrootOS and memfs both satisfy it; ChrootOS has no Chroot method and so
// is not a full billy.Filesystem.
type Storage interface {
	billy.Basic
	billy.Dir
	billy.Symlink
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	workdir string
}

// WithWorkingDir sets the initial current directory of a MemoryFS. The
// directory is created when missing. It has no effect on LocalFS, whose
// current directory is the process working directory.
func WithWorkingDir(dir string) Option {
	return func(c *config) {
		c.workdir = dir
	}
}

func newConfig(opts []Option) *config {
	c := &config{workdir: "/"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// normalize converts names to use forward slashes consistently.
func normalize(name string) string {
	return filepath.ToSlash(name)
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

func dirEntries(infos []fs.FileInfo) []fs.DirEntry {
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries
}

// timedInfo overrides the modification time reported by a FileInfo.
type timedInfo struct {
	fs.FileInfo
	mtime time.Time
}

func (t timedInfo) ModTime() time.Time { return t.mtime }

// pathErr attaches op and name to err unless it already names a path.
func pathErr(op, name string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// copyContents streams the regular file from into a newly created file to.
// The destination must not exist.
func copyContents(bfs Storage, from, to string, perm fs.FileMode) (err error) {
	src, err := bfs.Open(from)
	if err != nil {
		return pathErr("open", from, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := bfs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return pathErr("open", to, err)
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = pathErr("close", to, cerr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return pathErr("copy", to, err)
	}
	return nil
}

// truncate resizes an existing file through a billy handle.
func truncate(bfs Storage, name string, size int64) error {
	if size < 0 {
		return &fs.PathError{Op: "truncate", Path: name, Err: fs.ErrInvalid}
	}
	f, err := bfs.OpenFile(name, os.O_WRONLY, 0)
	if err != nil {
		return pathErr("truncate", name, err)
	}
	if err := f.Truncate(size); err != nil {
		_ = f.Close()
		return pathErr("truncate", name, err)
	}
	return f.Close()
}
