package billy

import (
	"io/fs"
	"math"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// MemoryFS is an in-process filesystem backed by billy's memfs.
//
// MemoryFS resolves names itself before handing them to memfs: relative
// names against its own current directory, and symbolic links in every
// component, bounded by maxSymlinks. memfs has no hard links, so Link is
// unsupported and LinkCount is always 1. Operations are serialized by a
// single mutex, which also guards the current directory.
type MemoryFS struct {
	bfs billy.Filesystem

	mu     sync.Mutex
	cwd    string
	mtimes map[string]time.Time
}

// NewMemory creates a go-billy-backed in-memory filesystem containing only
// the root directory and, if WithWorkingDir is given, the working
// directory.
func NewMemory(opts ...Option) *MemoryFS {
	cfg := newConfig(opts)
	mfs := &MemoryFS{
		bfs:    memfs.New(),
		cwd:    "/",
		mtimes: make(map[string]time.Time),
	}
	_ = mfs.bfs.MkdirAll("/", 0o755)
	if wd := path.Clean(mfs.abs(cfg.workdir)); wd != "/" {
		_ = mfs.bfs.MkdirAll(wd, 0o755)
		mfs.cwd = wd
	}
	return mfs
}

// Unwrap returns the underlying billy.Filesystem.
func (mfs *MemoryFS) Unwrap() billy.Filesystem {
	return mfs.bfs
}

// abs anchors name at the current directory without cleaning it, so that
// ".." is applied after symbolic links are expanded.
func (mfs *MemoryFS) abs(name string) string {
	name = normalize(name)
	if strings.HasPrefix(name, "/") {
		return name
	}
	return mfs.cwd + "/" + name
}

// resolve returns the storage name for name with symbolic links expanded
// in every directory component, and in the final component when follow is
// set. A missing final component is not an error.
func (mfs *MemoryFS) resolve(name string, follow bool) (string, error) {
	if name == "" {
		return "", &fs.PathError{Op: "resolve", Path: name, Err: core.ErrNotExist}
	}

	pending := strings.Split(mfs.abs(name), "/")
	resolved := "/"
	links := 0
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		switch c {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, c)
		last := !slices.ContainsFunc(pending, func(s string) bool { return s != "" && s != "." })
		if last && !follow {
			resolved = next
			continue
		}

		info, err := mfs.bfs.Lstat(next)
		switch {
		case err != nil && errors.Is(err, fs.ErrNotExist) && last:
			return next, nil
		case err != nil:
			return "", pathErr("lstat", name, err)
		case info.Mode()&fs.ModeSymlink != 0:
			links++
			if links > maxSymlinks {
				return "", &fs.PathError{Op: "resolve", Path: name, Err: core.ErrLoop}
			}
			target, err := mfs.bfs.Readlink(next)
			if err != nil {
				return "", pathErr("readlink", name, err)
			}
			target = normalize(target)
			if strings.HasPrefix(target, "/") {
				resolved = "/"
			}
			pending = append(strings.Split(target, "/"), pending...)
		case !info.IsDir() && !last:
			return "", &fs.PathError{Op: "resolve", Path: name, Err: core.ErrNotDir}
		default:
			resolved = next
		}
	}
	return resolved, nil
}

// lstat stats a resolved name, applying any modification time set through
// Chtimes.
func (mfs *MemoryFS) lstat(op, name, resolved string) (fs.FileInfo, error) {
	info, err := mfs.bfs.Lstat(resolved)
	if err != nil {
		return nil, pathErr(op, name, err)
	}
	if mtime, ok := mfs.mtimes[resolved]; ok {
		return timedInfo{FileInfo: info, mtime: mtime}, nil
	}
	return info, nil
}

func (mfs *MemoryFS) requireDir(op, name, dir string) error {
	info, err := mfs.bfs.Lstat(dir)
	if err != nil {
		return pathErr(op, name, err)
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotDir}
	}
	return nil
}

func (mfs *MemoryFS) exists(resolved string) bool {
	_, err := mfs.bfs.Lstat(resolved)
	return err == nil
}

func (mfs *MemoryFS) isEmptyDir(resolved string) (bool, error) {
	infos, err := mfs.bfs.ReadDir(resolved)
	if err != nil {
		return false, err
	}
	return len(infos) == 0, nil
}

// Stat returns file info for name, following symbolic links.
func (mfs *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return nil, err
	}
	return mfs.lstat("stat", name, r)
}

// Lstat returns file info for name without following a final link.
func (mfs *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, false)
	if err != nil {
		return nil, err
	}
	return mfs.lstat("lstat", name, r)
}

// Readlink returns the destination of the named symbolic link.
func (mfs *MemoryFS) Readlink(name string) (string, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, false)
	if err != nil {
		return "", err
	}
	info, err := mfs.lstat("readlink", name, r)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: core.ErrInvalid}
	}
	target, err := mfs.bfs.Readlink(r)
	if err != nil {
		return "", pathErr("readlink", name, err)
	}
	return target, nil
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (mfs *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return nil, err
	}
	if err := mfs.requireDir("readdir", name, r); err != nil {
		return nil, err
	}
	infos, err := mfs.bfs.ReadDir(r)
	if err != nil {
		return nil, pathErr("readdir", name, err)
	}
	slices.SortFunc(infos, func(a, b fs.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return dirEntries(infos), nil
}

// LinkCount returns 1 for any existing entry.
func (mfs *MemoryFS) LinkCount(name string) (uint64, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return 0, err
	}
	if _, err := mfs.lstat("stat", name, r); err != nil {
		return 0, err
	}
	return 1, nil
}

// Mkdir creates a single directory. The parent must exist.
func (mfs *MemoryFS) Mkdir(name string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, false)
	if err != nil {
		return err
	}
	if mfs.exists(r) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: core.ErrExist}
	}
	if err := mfs.requireDir("mkdir", name, path.Dir(r)); err != nil {
		return err
	}
	if err := mfs.bfs.MkdirAll(r, perm); err != nil {
		return pathErr("mkdir", name, err)
	}
	return nil
}

// Symlink creates a symbolic link named link pointing at target.
func (mfs *MemoryFS) Symlink(target, link string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(link, false)
	if err != nil {
		return err
	}
	if mfs.exists(r) {
		return &fs.PathError{Op: "symlink", Path: link, Err: core.ErrExist}
	}
	if err := mfs.requireDir("symlink", link, path.Dir(r)); err != nil {
		return err
	}
	if err := mfs.bfs.Symlink(target, r); err != nil {
		return pathErr("symlink", link, err)
	}
	return nil
}

// Link is not supported by the memory backend.
func (mfs *MemoryFS) Link(_, link string) error {
	return &fs.PathError{Op: "link", Path: link, Err: core.ErrUnsupported}
}

// CopyFile copies the regular file from into the new file to.
func (mfs *MemoryFS) CopyFile(from, to string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	f, err := mfs.resolve(from, true)
	if err != nil {
		return err
	}
	info, err := mfs.lstat("copy", from, f)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: from, Err: core.ErrIsDir}
	}

	t, err := mfs.resolve(to, false)
	if err != nil {
		return err
	}
	if mfs.exists(t) {
		return &fs.PathError{Op: "copy", Path: to, Err: core.ErrExist}
	}
	if err := mfs.requireDir("copy", to, path.Dir(t)); err != nil {
		return err
	}
	return copyContents(mfs.bfs, f, t, info.Mode().Perm())
}

// Truncate changes the size of the named file.
func (mfs *MemoryFS) Truncate(name string, size int64) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return err
	}
	info, err := mfs.lstat("truncate", name, r)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "truncate", Path: name, Err: core.ErrIsDir}
	}
	return truncate(mfs.bfs, r, size)
}

// Chtimes records the modification time of the named entry. The access
// time is not tracked.
func (mfs *MemoryFS) Chtimes(name string, _, mtime time.Time) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return err
	}
	if _, err := mfs.lstat("chtimes", name, r); err != nil {
		return err
	}
	mfs.mtimes[r] = mtime
	return nil
}

// Remove removes a file, a symbolic link or an empty directory.
func (mfs *MemoryFS) Remove(name string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, false)
	if err != nil {
		return err
	}
	if r == "/" {
		return &fs.PathError{Op: "remove", Path: name, Err: core.ErrPermission}
	}
	info, err := mfs.lstat("remove", name, r)
	if err != nil {
		return err
	}
	if info.IsDir() {
		empty, err := mfs.isEmptyDir(r)
		if err != nil {
			return pathErr("remove", name, err)
		}
		if !empty {
			return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
		}
	}
	if err := mfs.bfs.Remove(r); err != nil {
		return pathErr("remove", name, err)
	}
	delete(mfs.mtimes, r)
	return nil
}

// Rename moves from to to, replacing a file or an empty directory at to.
func (mfs *MemoryFS) Rename(from, to string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	f, err := mfs.resolve(from, false)
	if err != nil {
		return err
	}
	info, err := mfs.lstat("rename", from, f)
	if err != nil {
		return err
	}
	t, err := mfs.resolve(to, false)
	if err != nil {
		return err
	}
	if f == t {
		return nil
	}
	if f == "/" || strings.HasPrefix(t, f+"/") {
		return &fs.PathError{Op: "rename", Path: from, Err: core.ErrInvalid}
	}
	if err := mfs.requireDir("rename", to, path.Dir(t)); err != nil {
		return err
	}

	if tinfo, err := mfs.bfs.Lstat(t); err == nil {
		switch {
		case tinfo.IsDir() && !info.IsDir():
			return &fs.PathError{Op: "rename", Path: to, Err: core.ErrIsDir}
		case !tinfo.IsDir() && info.IsDir():
			return &fs.PathError{Op: "rename", Path: to, Err: core.ErrNotDir}
		case tinfo.IsDir():
			empty, err := mfs.isEmptyDir(t)
			if err != nil {
				return pathErr("rename", to, err)
			}
			if !empty {
				return &fs.PathError{Op: "rename", Path: to, Err: core.ErrNotEmpty}
			}
		}
		if err := mfs.bfs.Remove(t); err != nil {
			return pathErr("rename", to, err)
		}
		delete(mfs.mtimes, t)
	}
	return mfs.move(f, t)
}

// move relocates a resolved entry and everything beneath it. memfs's own
// Rename matches descendants by string prefix, which also catches siblings
// such as "a2" when moving "a".
func (mfs *MemoryFS) move(from, to string) error {
	info, err := mfs.bfs.Lstat(from)
	if err != nil {
		return pathErr("rename", from, err)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := mfs.bfs.Readlink(from)
		if err != nil {
			return pathErr("rename", from, err)
		}
		if err := mfs.bfs.Symlink(target, to); err != nil {
			return pathErr("rename", to, err)
		}
	case info.IsDir():
		if err := mfs.bfs.MkdirAll(to, info.Mode().Perm()); err != nil {
			return pathErr("rename", to, err)
		}
		children, err := mfs.bfs.ReadDir(from)
		if err != nil {
			return pathErr("rename", from, err)
		}
		for _, child := range children {
			if err := mfs.move(path.Join(from, child.Name()), path.Join(to, child.Name())); err != nil {
				return err
			}
		}
	default:
		if err := copyContents(mfs.bfs, from, to, info.Mode().Perm()); err != nil {
			return err
		}
	}

	if err := mfs.bfs.Remove(from); err != nil {
		return pathErr("rename", from, err)
	}
	if mtime, ok := mfs.mtimes[from]; ok {
		mfs.mtimes[to] = mtime
		delete(mfs.mtimes, from)
	}
	return nil
}

// SameFile reports whether a and b resolve to the same entry.
func (mfs *MemoryFS) SameFile(a, b string) (bool, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	ra, err := mfs.resolve(a, true)
	if err != nil {
		return false, err
	}
	if _, err := mfs.lstat("stat", a, ra); err != nil {
		return false, err
	}
	rb, err := mfs.resolve(b, true)
	if err != nil {
		return false, err
	}
	if _, err := mfs.lstat("stat", b, rb); err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Space reports an unbounded volume for any existing name.
func (mfs *MemoryFS) Space(name string) (core.SpaceInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return core.SpaceInfo{}, err
	}
	if _, err := mfs.lstat("statfs", name, r); err != nil {
		return core.SpaceInfo{}, err
	}
	return core.SpaceInfo{Capacity: math.MaxUint64, Free: math.MaxUint64, Available: math.MaxUint64}, nil
}

// Getwd returns the current directory.
func (mfs *MemoryFS) Getwd() (string, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.cwd, nil
}

// Chdir changes the current directory.
func (mfs *MemoryFS) Chdir(dir string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(dir, true)
	if err != nil {
		return err
	}
	if err := mfs.requireDir("chdir", dir, r); err != nil {
		return err
	}
	mfs.cwd = r
	return nil
}

// Code maps errors returned by this backend to the taxonomy.
func (mfs *MemoryFS) Code(err error) errors.ErrorCode {
	return core.CodeOf(err)
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// ReadFile reads the named file and returns its contents.
func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return nil, err
	}
	info, err := mfs.lstat("open", name, r)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: core.ErrIsDir}
	}
	data, err := util.ReadFile(mfs.bfs, r)
	if err != nil {
		return nil, pathErr("read", name, err)
	}
	return data, nil
}

// WriteFile writes data to the named file, creating it and any missing
// parents if necessary.
func (mfs *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	r, err := mfs.resolve(name, true)
	if err != nil {
		return err
	}
	if err := util.WriteFile(mfs.bfs, r, data, perm); err != nil {
		return pathErr("write", name, err)
	}
	return nil
}

// MkdirAll creates a directory and any missing parents.
func (mfs *MemoryFS) MkdirAll(name string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if err := mfs.bfs.MkdirAll(path.Clean(mfs.abs(name)), perm); err != nil {
		return pathErr("mkdir", name, err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.Backend   = (*MemoryFS)(nil)
	_ core.ContentFS = (*MemoryFS)(nil)
)
