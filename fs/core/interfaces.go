package core

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/pathfs/errors"
)

// FSType represents the underlying type of backend implementation.
type FSType int

const (
	// FSTypeUnknown indicates the backend type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host operating system's filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-process filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Backend is the system-call layer the operation dispatcher drives.
//
// Every name passed to a Backend is a native string. Relative names are
// resolved against the backend's current directory (see WorkdirFS).
// Failures are returned as errors that Code maps into the error taxonomy.
type Backend interface {
	StatFS
	WriteFS
	ManageFS
	VolumeFS
	WorkdirFS

	// Code maps an error returned by this backend to an error code. The
	// mapping is total: anything unrecognised is errors.CodeUnknown.
	Code(err error) errors.ErrorCode

	// Type returns the underlying backend type.
	Type() FSType
}

// StatFS defines metadata queries.
type StatFS interface {
	// Stat returns file info for name, following symbolic links. A chain
	// of links that does not terminate returns ErrLoop.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns file info without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the destination of the named symbolic link.
	// If the file is not a symbolic link, Readlink returns an error.
	Readlink(name string) (string, error)

	// ReadDir returns the entries of the named directory sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// LinkCount returns the number of hard links to name.
	LinkCount(name string) (uint64, error)
}

// WriteFS defines operations that create or modify entries.
type WriteFS interface {
	// Mkdir creates a single directory. The parent must exist; an existing
	// entry at name returns ErrExist.
	Mkdir(name string, perm fs.FileMode) error

	// Symlink creates a symbolic link named link whose contents are
	// target. The target is stored as-is and need not exist.
	Symlink(target, link string) error

	// Link creates a hard link named link to the existing file target.
	Link(target, link string) error

	// CopyFile copies the contents and permission bits of the regular file
	// from into a new file to. An existing entry at to returns ErrExist.
	CopyFile(from, to string) error

	// Truncate changes the size of the named file, discarding or
	// zero-filling as needed.
	Truncate(name string, size int64) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// ManageFS defines operations that remove or move entries.
type ManageFS interface {
	// Remove removes a file, a symbolic link or an empty directory. A
	// directory with entries returns ErrNotEmpty.
	Remove(name string) error

	// Rename moves from to to, replacing an existing non-directory at to.
	Rename(from, to string) error

	// SameFile reports whether both names resolve to the same underlying
	// entity.
	SameFile(a, b string) (bool, error)
}

// VolumeFS defines volume queries.
type VolumeFS interface {
	// Space reports the capacity of the volume containing name.
	Space(name string) (SpaceInfo, error)
}

// WorkdirFS defines the backend's current directory.
//
// For the local backend this is the process working directory and is
// shared by every goroutine.
type WorkdirFS interface {
	// Getwd returns the absolute native name of the current directory.
	Getwd() (string, error)

	// Chdir changes the current directory.
	Chdir(dir string) error
}

// ContentFS is an optional capability for reading and writing whole files.
// It is used to seed backends and to inspect them in tests.
//
//	if cfs, ok := backend.(core.ContentFS); ok {
//	    err := core.Seed(templates, cfs, "templates")
//	}
type ContentFS interface {
	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(name string, perm fs.FileMode) error
}
