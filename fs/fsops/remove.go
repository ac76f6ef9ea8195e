package fsops

import (
	"math"

	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// Remove removes the file, symbolic link or empty directory p. It reports
// false without an error when p does not exist.
func (f *FS) Remove(p fspath.Path) (bool, error) {
	const op = "Remove"
	st, err := f.symlinkStatus(op, p)
	if err != nil {
		return false, err
	}
	if !st.Exists() {
		return false, nil
	}
	if err := f.backend.Remove(p.Native()); err != nil {
		if f.notFound(err) {
			return false, nil
		}
		return false, f.fail(op, p, fspath.Path{}, err)
	}
	f.done(op, p, fspath.Path{})
	return true, nil
}

// RemoveAll removes p and, when p is a directory, everything beneath it.
// Symbolic links are removed, never followed. It returns the number of
// entries removed, which is 0 when p does not exist.
func (f *FS) RemoveAll(p fspath.Path) (uint64, error) {
	const op = "RemoveAll"
	n, err := f.removeAll(op, p)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		f.done(op, p, fspath.Path{})
	}
	return n, nil
}

func (f *FS) removeAll(op string, p fspath.Path) (uint64, error) {
	st, err := f.symlinkStatus(op, p)
	if err != nil {
		return 0, err
	}
	if !st.Exists() {
		return 0, nil
	}

	var n uint64
	if st.IsDirectory() {
		entries, err := f.backend.ReadDir(p.Native())
		if err != nil {
			return 0, f.fail(op, p, fspath.Path{}, err)
		}
		for _, entry := range entries {
			m, err := f.removeAll(op, p.Join(entry.Name()))
			if err != nil {
				return 0, err
			}
			n += m
		}
	}
	if err := f.backend.Remove(p.Native()); err != nil {
		if f.notFound(err) {
			return n, nil
		}
		return 0, f.fail(op, p, fspath.Path{}, err)
	}
	return n + 1, nil
}

// Rename moves from to to. An existing file at to is replaced, and so is
// an empty directory when from is a directory; the backend decides
// atomicity. Moving across volumes fails with CodeCrossDevice.
func (f *FS) Rename(from, to fspath.Path) error {
	const op = "Rename"
	if err := f.valid(op, from, to); err != nil {
		return err
	}
	if err := f.backend.Rename(from.Native(), to.Native()); err != nil {
		return f.fail(op, from, to, err)
	}
	f.done(op, from, to)
	return nil
}

// ResizeFile truncates or zero-extends the regular file p to size bytes.
func (f *FS) ResizeFile(p fspath.Path, size uint64) error {
	const op = "ResizeFile"
	if err := f.valid(op, p); err != nil {
		return err
	}
	if size > math.MaxInt64 {
		return f.fail(op, p, fspath.Path{}, sentinel("truncate", p, core.ErrInvalid))
	}
	if err := f.backend.Truncate(p.Native(), int64(size)); err != nil {
		return f.fail(op, p, fspath.Path{}, err)
	}
	f.done(op, p, fspath.Path{})
	return nil
}

// Space reports capacity and free space of the volume containing p.
func (f *FS) Space(p fspath.Path) (core.SpaceInfo, error) {
	const op = "Space"
	if err := f.valid(op, p); err != nil {
		return core.SpaceInfo{}, err
	}
	info, err := f.backend.Space(p.Native())
	if err != nil {
		return core.SpaceInfo{}, f.fail(op, p, fspath.Path{}, err)
	}
	return info, nil
}
