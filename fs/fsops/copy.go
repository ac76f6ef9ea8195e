package fsops

import (
	"encoding/hex"
	"io"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// CopyOption selects how CopyFile treats an existing destination.
type CopyOption uint8

const (
	// FailIfExists fails with CodeAlreadyExists when the destination
	// exists. It is the zero value.
	FailIfExists CopyOption = iota
	// OverwriteIfExists replaces an existing destination file.
	OverwriteIfExists
)

// String returns the name of the option.
func (o CopyOption) String() string {
	switch o {
	case FailIfExists:
		return "fail_if_exists"
	case OverwriteIfExists:
		return "overwrite_if_exists"
	default:
		return "unknown"
	}
}

// Copy copies from to to according to the type of from: symbolic links
// are copied as links, directories with CopyDirectory (not recursively),
// and regular files with CopyFile using FailIfExists.
func (f *FS) Copy(from, to fspath.Path) error {
	const op = "Copy"
	st, err := f.symlinkStatus(op, from)
	if err != nil {
		return err
	}
	switch {
	case st.IsSymlink():
		return f.copySymlink(op, from, to)
	case st.IsDirectory():
		return f.copyDirectory(op, from, to)
	case st.IsRegularFile():
		return f.copyFile(op, from, to, FailIfExists)
	case !st.Exists():
		return f.fail(op, from, to, sentinel("lstat", from, core.ErrNotExist))
	default:
		return f.fail(op, from, to, sentinel("copy", from, core.ErrUnsupported))
	}
}

// CopyFile copies the contents and permission bits of the regular file
// from into to.
//
// With FailIfExists an existing to fails with CodeAlreadyExists. With
// OverwriteIfExists the copy is written next to to and renamed over it, so
// readers of to never observe a partial file. When to is a symbolic link
// the file it resolves to is replaced; when from and to are the same file
// the copy fails with CodeInvalidArgument.
func (f *FS) CopyFile(from, to fspath.Path, option CopyOption) error {
	return f.copyFile("CopyFile", from, to, option)
}

func (f *FS) copyFile(op string, from, to fspath.Path, option CopyOption) error {
	if err := f.valid(op, from, to); err != nil {
		return err
	}

	err := f.backend.CopyFile(from.Native(), to.Native())
	if err != nil && option == OverwriteIfExists && f.backend.Code(err) == errors.CodeAlreadyExists {
		err = f.replaceFile(op, from, to)
	}
	if err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			return fe
		}
		return f.fail(op, from, to, err)
	}
	f.done(op, from, to)
	return nil
}

// replaceFile copies from into a temporary sibling of to and renames it
// over to. A symbolic link at to is followed, so the file it points at is
// replaced and the link survives. Replacing a file with itself fails with
// CodeInvalidArgument.
func (f *FS) replaceFile(op string, from, to fspath.Path) error {
	st, err := f.status(op, to)
	if err != nil {
		return err
	}
	if st.IsDirectory() {
		return sentinel("copy", to, core.ErrIsDir)
	}
	if st.Exists() {
		same, err := f.backend.SameFile(from.Native(), to.Native())
		if err != nil {
			return err
		}
		if same {
			return sentinel("copy", to, core.ErrInvalid)
		}
		lst, err := f.symlinkStatus(op, to)
		if err != nil {
			return err
		}
		if lst.IsSymlink() {
			if to, err = f.canonical(op, to); err != nil {
				return err
			}
		}
	}

	tmp, err := f.tempSibling(op, to)
	if err != nil {
		return err
	}
	if err := f.backend.CopyFile(from.Native(), tmp.Native()); err != nil {
		return err
	}
	if err := f.backend.Rename(tmp.Native(), to.Native()); err != nil {
		_ = f.backend.Remove(tmp.Native())
		return err
	}
	return nil
}

func (f *FS) tempSibling(op string, p fspath.Path) (fspath.Path, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(f.opts.Random, buf); err != nil {
		return fspath.Path{}, f.fail(op, p, fspath.Path{}, errors.Wrap(err, errors.CodeIOError, "read random source"))
	}
	return p.ReplaceFilename("." + p.Filename() + "." + hex.EncodeToString(buf) + ".tmp"), nil
}

// CopyDirectory creates the directory to with the permission bits of the
// directory from. Entries of from are not copied.
func (f *FS) CopyDirectory(from, to fspath.Path) error {
	return f.copyDirectory("CopyDirectory", from, to)
}

func (f *FS) copyDirectory(op string, from, to fspath.Path) error {
	if err := f.valid(op, from, to); err != nil {
		return err
	}
	info, err := f.backend.Stat(from.Native())
	if err != nil {
		return f.fail(op, from, to, err)
	}
	if !info.IsDir() {
		return f.fail(op, from, to, sentinel("copy", from, core.ErrNotDir))
	}
	if err := f.backend.Mkdir(to.Native(), info.Mode().Perm()); err != nil {
		return f.fail(op, from, to, err)
	}
	f.done(op, from, to)
	return nil
}

// CopySymlink creates to as a symbolic link with the same target as the
// symbolic link from.
func (f *FS) CopySymlink(from, to fspath.Path) error {
	return f.copySymlink("CopySymlink", from, to)
}

func (f *FS) copySymlink(op string, from, to fspath.Path) error {
	if err := f.valid(op, from, to); err != nil {
		return err
	}
	target, err := f.backend.Readlink(from.Native())
	if err != nil {
		return f.fail(op, from, to, err)
	}
	if err := f.backend.Symlink(target, to.Native()); err != nil {
		return f.fail(op, from, to, err)
	}
	f.done(op, from, to)
	return nil
}
