package fsops

import (
	"io/fs"

	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// CurrentPath returns the backend's current directory. For the local
// backend this is the process working directory, shared by every
// goroutine.
func (f *FS) CurrentPath() (fspath.Path, error) {
	return f.currentPath("CurrentPath", fspath.Path{})
}

func (f *FS) currentPath(op string, p fspath.Path) (fspath.Path, error) {
	wd, err := f.backend.Getwd()
	if err != nil {
		return fspath.Path{}, f.fail(op, p, fspath.Path{}, err)
	}
	return fromNative(p, wd), nil
}

// SetCurrentPath changes the backend's current directory to p.
// Operations running concurrently may resolve relative paths against
// either directory.
func (f *FS) SetCurrentPath(p fspath.Path) error {
	const op = "SetCurrentPath"
	if err := f.valid(op, p); err != nil {
		return err
	}
	if err := f.backend.Chdir(p.Native()); err != nil {
		return f.fail(op, p, fspath.Path{}, err)
	}
	f.done(op, p, fspath.Path{})
	return nil
}

// Absolute composes p with the current directory. Neither symbolic links
// nor "." and ".." are resolved, and p need not exist.
func (f *FS) Absolute(p fspath.Path) (fspath.Path, error) {
	return f.absolute("Absolute", p)
}

func (f *FS) absolute(op string, p fspath.Path) (fspath.Path, error) {
	if err := f.valid(op, p); err != nil {
		return fspath.Path{}, err
	}
	if p.IsAbsolute() {
		return p, nil
	}
	cwd, err := f.currentPath(op, p)
	if err != nil {
		return fspath.Path{}, err
	}
	return fspath.Absolute(p, cwd), nil
}

// AbsoluteFrom composes p with base, which is itself made absolute
// against the current directory first.
func (f *FS) AbsoluteFrom(p, base fspath.Path) (fspath.Path, error) {
	const op = "AbsoluteFrom"
	if err := f.valid(op, p, base); err != nil {
		return fspath.Path{}, err
	}
	abs, err := f.absolute(op, base)
	if err != nil {
		return fspath.Path{}, err
	}
	return fspath.Absolute(p, abs), nil
}

// SystemComplete returns the absolute form of p against the current
// directory, without consulting the entries it names.
func (f *FS) SystemComplete(p fspath.Path) (fspath.Path, error) {
	return f.absolute("SystemComplete", p)
}

// Canonical returns the absolute form of p with every symbolic link
// expanded and every "." and ".." removed. Each component must exist.
func (f *FS) Canonical(p fspath.Path) (fspath.Path, error) {
	return f.canonical("Canonical", p)
}

func (f *FS) canonical(op string, p fspath.Path) (fspath.Path, error) {
	abs, err := f.absolute(op, p)
	if err != nil {
		return fspath.Path{}, err
	}

	result := abs.RootPath()
	pending := abs.RelativePath().Components()
	links := 0
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		switch c {
		case "", ".":
			continue
		case "..":
			result = result.ParentPath()
			continue
		}

		next := result.Join(c)
		info, err := f.backend.Lstat(next.Native())
		if err != nil {
			return fspath.Path{}, f.fail(op, p, fspath.Path{}, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			result = next
			continue
		}

		links++
		if links > f.opts.MaxSymlinkDepth {
			return fspath.Path{}, f.fail(op, p, fspath.Path{}, sentinel("canonical", p, core.ErrLoop))
		}
		target, err := f.backend.Readlink(next.Native())
		if err != nil {
			return fspath.Path{}, f.fail(op, p, fspath.Path{}, err)
		}
		tp := fromNative(p, target)
		if tp.HasRootPath() {
			result = fspath.Absolute(tp, result).RootPath()
		}
		pending = append(tp.RelativePath().Components(), pending...)
	}
	return result, nil
}

// Equivalent reports whether p1 and p2 resolve to the same entry. It
// fails when neither exists and reports false when only one does.
func (f *FS) Equivalent(p1, p2 fspath.Path) (bool, error) {
	const op = "Equivalent"
	s1, err := f.status(op, p1)
	if err != nil {
		return false, err
	}
	s2, err := f.status(op, p2)
	if err != nil {
		return false, err
	}
	switch {
	case !s1.Exists() && !s2.Exists():
		return false, f.fail(op, p1, p2, sentinel("stat", p1, core.ErrNotExist))
	case !s1.Exists() || !s2.Exists():
		return false, nil
	}

	same, err := f.backend.SameFile(p1.Native(), p2.Native())
	if err != nil {
		return false, f.fail(op, p1, p2, err)
	}
	return same, nil
}
