// Package billy provides go-billy-backed implementations of the
// core.Backend interface.
//
// LocalFS wraps billy's osfs and operates on the host filesystem. Relative
// names resolve against the process working directory, and raw operating
// system errors are mapped to error codes through golang.org/x/sys:
//
//	local := billy.NewLocal()
//	info, err := local.Stat("go.mod")
//	code := local.Code(err)
//
// # Memory Filesystem
//
// MemoryFS wraps billy's memfs and keeps everything in process. It has
// its own current directory and resolves symbolic links itself, so it
// behaves like a POSIX filesystem for everything except hard links:
//
//	mem := billy.NewMemory(billy.WithWorkingDir("/work"))
//	err := core.Seed(fixtures, mem, ".")
//
// Both backends implement core.ContentFS and expose the underlying billy
// storage through Unwrap.
//
// # Thread Safety
//
// MemoryFS serializes its operations and is safe for concurrent use.
// LocalFS is safe for concurrent use, but its current directory is the
// process working directory, shared by every goroutine.
package billy
