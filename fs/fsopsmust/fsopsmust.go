// Package fsopsmust wraps the fsops package with panic-based error
// handling.
//
// It provides the same operations as fsops.FS, but instead of returning
// errors, every method panics with the *fsops.Error the operation
// produced. Conditions that fsops reports as answers rather than errors,
// such as a missing path passed to Exists or Remove, do not panic.
package fsopsmust

import (
	"time"

	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fsops"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// FS provides the operations of fsops.FS with panics on failure.
type FS struct {
	ops *fsops.FS
}

// New creates an FS driving backend.
func New(backend core.Backend, opts ...fsops.Option) *FS {
	return &FS{ops: fsops.New(backend, opts...)}
}

// Wrap returns an FS sharing the configuration of ops.
func Wrap(ops *fsops.FS) *FS {
	return &FS{ops: ops}
}

// Unwrap returns the error-returning FS.
func (m *FS) Unwrap() *fsops.FS {
	return m.ops
}

// Status returns the status of p, following symbolic links.
func (m *FS) Status(p fspath.Path) core.FileStatus {
	return must1(m.ops.Status(p))
}

// SymlinkStatus returns the status of p without following a final link.
func (m *FS) SymlinkStatus(p fspath.Path) core.FileStatus {
	return must1(m.ops.SymlinkStatus(p))
}

// Exists reports whether p exists. It panics only if p cannot be queried.
func (m *FS) Exists(p fspath.Path) bool {
	return must1(m.ops.Exists(p))
}

// IsDirectory reports whether p resolves to a directory.
func (m *FS) IsDirectory(p fspath.Path) bool {
	return must1(m.ops.IsDirectory(p))
}

// IsRegularFile reports whether p resolves to a regular file.
func (m *FS) IsRegularFile(p fspath.Path) bool {
	return must1(m.ops.IsRegularFile(p))
}

// IsSymlink reports whether p is a symbolic link.
func (m *FS) IsSymlink(p fspath.Path) bool {
	return must1(m.ops.IsSymlink(p))
}

// IsOther reports whether p is neither a regular file, a directory nor a
// symbolic link.
func (m *FS) IsOther(p fspath.Path) bool {
	return must1(m.ops.IsOther(p))
}

// IsEmpty reports whether p is an empty directory or an empty file.
func (m *FS) IsEmpty(p fspath.Path) bool {
	return must1(m.ops.IsEmpty(p))
}

// FileSize returns the size of the regular file p.
func (m *FS) FileSize(p fspath.Path) uint64 {
	return must1(m.ops.FileSize(p))
}

// HardLinkCount returns the number of hard links to p.
func (m *FS) HardLinkCount(p fspath.Path) uint64 {
	return must1(m.ops.HardLinkCount(p))
}

// LastWriteTime returns the modification time of p.
func (m *FS) LastWriteTime(p fspath.Path) time.Time {
	return must1(m.ops.LastWriteTime(p))
}

// SetLastWriteTime sets the modification time of p.
func (m *FS) SetLastWriteTime(p fspath.Path, mtime time.Time) {
	must0(m.ops.SetLastWriteTime(p, mtime))
}

// ReadSymlink returns the target of the symbolic link p.
func (m *FS) ReadSymlink(p fspath.Path) fspath.Path {
	return must1(m.ops.ReadSymlink(p))
}

// Copy copies from to to according to the type of from.
func (m *FS) Copy(from, to fspath.Path) {
	must0(m.ops.Copy(from, to))
}

// CopyFile copies the regular file from into to.
//
// It panics with code CodeAlreadyExists if to exists and option is
// fsops.FailIfExists.
func (m *FS) CopyFile(from, to fspath.Path, option fsops.CopyOption) {
	must0(m.ops.CopyFile(from, to, option))
}

// CopyDirectory creates to with the permission bits of from.
func (m *FS) CopyDirectory(from, to fspath.Path) {
	must0(m.ops.CopyDirectory(from, to))
}

// CopySymlink copies the symbolic link from to to.
func (m *FS) CopySymlink(from, to fspath.Path) {
	must0(m.ops.CopySymlink(from, to))
}

// CreateDirectory creates the directory p and reports whether it was new.
func (m *FS) CreateDirectory(p fspath.Path) bool {
	return must1(m.ops.CreateDirectory(p))
}

// CreateDirectories creates p and its missing ancestors and reports
// whether p was new.
func (m *FS) CreateDirectories(p fspath.Path) bool {
	return must1(m.ops.CreateDirectories(p))
}

// CreateSymlink creates link pointing at target.
func (m *FS) CreateSymlink(target, link fspath.Path) {
	must0(m.ops.CreateSymlink(target, link))
}

// CreateDirectorySymlink creates link pointing at the directory target.
func (m *FS) CreateDirectorySymlink(target, link fspath.Path) {
	must0(m.ops.CreateDirectorySymlink(target, link))
}

// CreateHardLink creates link as a hard link to target.
func (m *FS) CreateHardLink(target, link fspath.Path) {
	must0(m.ops.CreateHardLink(target, link))
}

// Remove removes p and reports whether anything was removed. A missing p
// does not panic.
func (m *FS) Remove(p fspath.Path) bool {
	return must1(m.ops.Remove(p))
}

// RemoveAll removes p recursively and returns the number of entries
// removed.
func (m *FS) RemoveAll(p fspath.Path) uint64 {
	return must1(m.ops.RemoveAll(p))
}

// Rename moves from to to.
func (m *FS) Rename(from, to fspath.Path) {
	must0(m.ops.Rename(from, to))
}

// ResizeFile truncates or extends p to size bytes.
func (m *FS) ResizeFile(p fspath.Path, size uint64) {
	must0(m.ops.ResizeFile(p, size))
}

// Space reports space on the volume containing p.
func (m *FS) Space(p fspath.Path) core.SpaceInfo {
	return must1(m.ops.Space(p))
}

// CurrentPath returns the current directory.
func (m *FS) CurrentPath() fspath.Path {
	return must1(m.ops.CurrentPath())
}

// SetCurrentPath changes the current directory.
func (m *FS) SetCurrentPath(p fspath.Path) {
	must0(m.ops.SetCurrentPath(p))
}

// Absolute composes p with the current directory.
func (m *FS) Absolute(p fspath.Path) fspath.Path {
	return must1(m.ops.Absolute(p))
}

// AbsoluteFrom composes p with base.
func (m *FS) AbsoluteFrom(p, base fspath.Path) fspath.Path {
	return must1(m.ops.AbsoluteFrom(p, base))
}

// SystemComplete returns the absolute form of p.
func (m *FS) SystemComplete(p fspath.Path) fspath.Path {
	return must1(m.ops.SystemComplete(p))
}

// Canonical returns the absolute, link-free form of the existing path p.
func (m *FS) Canonical(p fspath.Path) fspath.Path {
	return must1(m.ops.Canonical(p))
}

// Equivalent reports whether p1 and p2 resolve to the same entry.
func (m *FS) Equivalent(p1, p2 fspath.Path) bool {
	return must1(m.ops.Equivalent(p1, p2))
}

// UniquePath fills the '%' placeholders of model with random hexadecimal
// digits.
func (m *FS) UniquePath(model fspath.Path) fspath.Path {
	return must1(m.ops.UniquePath(model))
}
