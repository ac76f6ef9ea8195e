// Package core defines the backend contract and the status model shared by
// every filesystem backend.
//
// A Backend is the system-call layer underneath the operation dispatcher
// in package fsops. It is composed of small interfaces grouped by concern:
//
//   - StatFS: metadata queries (Stat, Lstat, Readlink, ReadDir, LinkCount)
//   - WriteFS: creation and modification (Mkdir, Symlink, Link, CopyFile,
//     Truncate, Chtimes)
//   - ManageFS: removal and movement (Remove, Rename, SameFile)
//   - VolumeFS: volume capacity (Space)
//   - WorkdirFS: the current directory (Getwd, Chdir)
//
// ContentFS is an optional capability for whole-file reads and writes,
// used by Seed to populate a backend from an fs.FS:
//
//	mem := billy.NewMemory()
//	err := core.Seed(fstest.MapFS{
//	    "a/b.txt": {Data: []byte("hello")},
//	}, mem, ".")
//
// # Status Model
//
// FileStatus pairs a FileType with permission bits. StatusOf classifies
// an fs.FileInfo. StatusError marks a failed query and FileNotFound a
// successful query that found nothing.
//
// # Errors
//
// Backends report failures with the sentinels in this package (or the
// io/fs sentinels they re-export) and with raw operating system errors.
// CodeOf maps the shared sentinels to an errors.ErrorCode; each backend's
// Code method extends that mapping for its own raw errors.
//
// # Provider Implementations
//
// Concrete backends live in package billy:
//
//   - billy.NewLocal: the host filesystem
//   - billy.NewMemory: an in-process filesystem
package core
