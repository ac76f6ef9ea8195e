package fsops

import (
	"io/fs"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// dirPerm is passed to the backend for new directories; the host umask
// applies on top of it.
const dirPerm fs.FileMode = 0o777

// CreateDirectory creates the directory p. Its parent must exist. It
// reports false without an error when p is already a directory.
func (f *FS) CreateDirectory(p fspath.Path) (bool, error) {
	return f.mkdir("CreateDirectory", p)
}

func (f *FS) mkdir(op string, p fspath.Path) (bool, error) {
	if err := f.valid(op, p); err != nil {
		return false, err
	}
	err := f.backend.Mkdir(p.Native(), dirPerm)
	if err == nil {
		f.done(op, p, fspath.Path{})
		return true, nil
	}
	if f.backend.Code(err) == errors.CodeAlreadyExists {
		if st, serr := f.status(op, p); serr == nil && st.IsDirectory() {
			return false, nil
		}
	}
	return false, f.fail(op, p, fspath.Path{}, err)
}

// CreateDirectories creates p and every missing ancestor. It reports
// whether p itself was created.
func (f *FS) CreateDirectories(p fspath.Path) (bool, error) {
	return f.mkdirAll("CreateDirectories", p)
}

func (f *FS) mkdirAll(op string, p fspath.Path) (bool, error) {
	if p.Empty() {
		return false, nil
	}
	if !p.HasFilename() && p.HasRelativePath() {
		p = p.ParentPath()
	}

	st, err := f.status(op, p)
	switch {
	case err != nil:
		return false, err
	case st.IsDirectory():
		return false, nil
	case st.Exists():
		return false, f.fail(op, p, fspath.Path{}, sentinel("mkdir", p, core.ErrExist))
	}

	if parent := p.ParentPath(); !parent.Empty() && !parent.Equal(p) {
		pst, err := f.status(op, parent)
		switch {
		case err != nil:
			return false, err
		case pst.IsDirectory():
		case pst.Exists():
			return false, f.fail(op, p, fspath.Path{}, sentinel("mkdir", parent, core.ErrNotDir))
		default:
			if _, err := f.mkdirAll(op, parent); err != nil {
				return false, err
			}
		}
	}
	return f.mkdir(op, p)
}

// CreateSymlink creates link as a symbolic link to target. target is
// stored as given and need not exist.
func (f *FS) CreateSymlink(target, link fspath.Path) error {
	return f.symlink("CreateSymlink", target, link)
}

// CreateDirectorySymlink creates link as a symbolic link to the directory
// target.
func (f *FS) CreateDirectorySymlink(target, link fspath.Path) error {
	return f.symlink("CreateDirectorySymlink", target, link)
}

func (f *FS) symlink(op string, target, link fspath.Path) error {
	if err := f.valid(op, target, link); err != nil {
		return err
	}
	if err := f.backend.Symlink(target.Native(), link.Native()); err != nil {
		return f.fail(op, target, link, err)
	}
	f.done(op, target, link)
	return nil
}

// CreateHardLink creates link as a hard link to the existing file target.
// Backends without hard links fail with CodeNotSupported.
func (f *FS) CreateHardLink(target, link fspath.Path) error {
	const op = "CreateHardLink"
	if err := f.valid(op, target, link); err != nil {
		return err
	}
	if err := f.backend.Link(target.Native(), link.Native()); err != nil {
		return f.fail(op, target, link, err)
	}
	f.done(op, target, link)
	return nil
}
