package fsops

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

var errStatus = core.FileStatus{Type: core.StatusError}

// absent reports whether err means the entry does not exist. A path
// component that is not a directory counts as absent.
func (f *FS) absent(err error) bool {
	switch f.backend.Code(err) {
	case errors.CodeNotFound, errors.CodeNotADirectory:
		return true
	default:
		return false
	}
}

// Status returns the status of p, following symbolic links. A missing
// entry, or a non-directory named with a trailing separator, is reported
// as core.FileNotFound without an error; a chain of links longer than the
// configured depth fails with CodeTooManySymlinks.
func (f *FS) Status(p fspath.Path) (core.FileStatus, error) {
	return f.status("Status", p)
}

func (f *FS) status(op string, p fspath.Path) (core.FileStatus, error) {
	if err := f.valid(op, p); err != nil {
		return errStatus, err
	}

	// A trailing separator requires the entry to be a directory.
	cur := p
	dirOnly := !cur.HasFilename() && cur.HasRelativePath()
	if dirOnly {
		cur = cur.ParentPath()
	}
	for depth := 0; ; depth++ {
		info, err := f.backend.Lstat(cur.Native())
		if err != nil {
			if f.absent(err) {
				return core.FileStatus{Type: core.FileNotFound}, nil
			}
			return errStatus, f.fail(op, p, fspath.Path{}, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			if dirOnly && !info.IsDir() {
				return core.FileStatus{Type: core.FileNotFound}, nil
			}
			return core.StatusOf(info), nil
		}
		if depth == f.opts.MaxSymlinkDepth {
			return errStatus, f.fail(op, p, fspath.Path{}, sentinel("stat", p, core.ErrLoop))
		}

		target, err := f.backend.Readlink(cur.Native())
		if err != nil {
			return errStatus, f.fail(op, p, fspath.Path{}, err)
		}
		cur = cur.RemoveFilename().JoinPath(fromNative(cur, target))
	}
}

// SymlinkStatus returns the status of p without following a final
// symbolic link.
func (f *FS) SymlinkStatus(p fspath.Path) (core.FileStatus, error) {
	return f.symlinkStatus("SymlinkStatus", p)
}

func (f *FS) symlinkStatus(op string, p fspath.Path) (core.FileStatus, error) {
	if err := f.valid(op, p); err != nil {
		return errStatus, err
	}
	info, err := f.backend.Lstat(p.Native())
	if err != nil {
		if f.absent(err) {
			return core.FileStatus{Type: core.FileNotFound}, nil
		}
		return errStatus, f.fail(op, p, fspath.Path{}, err)
	}
	return core.StatusOf(info), nil
}

// Exists reports whether p names an existing entry. Absence is not an
// error; any other failure to query p is.
func (f *FS) Exists(p fspath.Path) (bool, error) {
	st, err := f.status("Exists", p)
	if err != nil {
		return false, err
	}
	return st.Exists(), nil
}

// IsDirectory reports whether p resolves to a directory.
func (f *FS) IsDirectory(p fspath.Path) (bool, error) {
	st, err := f.status("IsDirectory", p)
	if err != nil {
		return false, err
	}
	return st.IsDirectory(), nil
}

// IsRegularFile reports whether p resolves to a regular file.
func (f *FS) IsRegularFile(p fspath.Path) (bool, error) {
	st, err := f.status("IsRegularFile", p)
	if err != nil {
		return false, err
	}
	return st.IsRegularFile(), nil
}

// IsSymlink reports whether p itself is a symbolic link.
func (f *FS) IsSymlink(p fspath.Path) (bool, error) {
	st, err := f.symlinkStatus("IsSymlink", p)
	if err != nil {
		return false, err
	}
	return st.IsSymlink(), nil
}

// IsOther reports whether p resolves to an existing entry that is not a
// regular file, directory or symbolic link.
func (f *FS) IsOther(p fspath.Path) (bool, error) {
	st, err := f.status("IsOther", p)
	if err != nil {
		return false, err
	}
	return st.IsOther(), nil
}

// IsEmpty reports whether p is an empty directory or a zero-length file.
func (f *FS) IsEmpty(p fspath.Path) (bool, error) {
	const op = "IsEmpty"
	st, err := f.status(op, p)
	if err != nil {
		return false, err
	}
	switch {
	case !st.Exists():
		return false, f.fail(op, p, fspath.Path{}, sentinel("stat", p, core.ErrNotExist))
	case st.IsDirectory():
		entries, err := f.backend.ReadDir(p.Native())
		if err != nil {
			return false, f.fail(op, p, fspath.Path{}, err)
		}
		return len(entries) == 0, nil
	default:
		info, err := f.backend.Stat(p.Native())
		if err != nil {
			return false, f.fail(op, p, fspath.Path{}, err)
		}
		return info.Size() == 0, nil
	}
}

// FileSize returns the size in bytes of the regular file p.
func (f *FS) FileSize(p fspath.Path) (uint64, error) {
	const op = "FileSize"
	if err := f.valid(op, p); err != nil {
		return 0, err
	}
	info, err := f.backend.Stat(p.Native())
	if err != nil {
		return 0, f.fail(op, p, fspath.Path{}, err)
	}
	switch {
	case info.IsDir():
		return 0, f.fail(op, p, fspath.Path{}, sentinel("stat", p, core.ErrIsDir))
	case !info.Mode().IsRegular():
		return 0, f.fail(op, p, fspath.Path{}, sentinel("stat", p, core.ErrUnsupported))
	}
	return uint64(info.Size()), nil
}

// HardLinkCount returns the number of hard links to p.
func (f *FS) HardLinkCount(p fspath.Path) (uint64, error) {
	const op = "HardLinkCount"
	if err := f.valid(op, p); err != nil {
		return 0, err
	}
	n, err := f.backend.LinkCount(p.Native())
	if err != nil {
		return 0, f.fail(op, p, fspath.Path{}, err)
	}
	return n, nil
}

// LastWriteTime returns the modification time of p.
func (f *FS) LastWriteTime(p fspath.Path) (time.Time, error) {
	const op = "LastWriteTime"
	if err := f.valid(op, p); err != nil {
		return time.Time{}, err
	}
	info, err := f.backend.Stat(p.Native())
	if err != nil {
		return time.Time{}, f.fail(op, p, fspath.Path{}, err)
	}
	return info.ModTime(), nil
}

// SetLastWriteTime sets the modification time of p. The access time is
// left unchanged.
func (f *FS) SetLastWriteTime(p fspath.Path, mtime time.Time) error {
	const op = "SetLastWriteTime"
	if err := f.valid(op, p); err != nil {
		return err
	}
	if err := f.backend.Chtimes(p.Native(), time.Time{}, mtime); err != nil {
		return f.fail(op, p, fspath.Path{}, err)
	}
	f.done(op, p, fspath.Path{})
	return nil
}

// ReadSymlink returns the target stored in the symbolic link p.
func (f *FS) ReadSymlink(p fspath.Path) (fspath.Path, error) {
	const op = "ReadSymlink"
	if err := f.valid(op, p); err != nil {
		return fspath.Path{}, err
	}
	target, err := f.backend.Readlink(p.Native())
	if err != nil {
		return fspath.Path{}, f.fail(op, p, fspath.Path{}, err)
	}
	return fromNative(p, target), nil
}
