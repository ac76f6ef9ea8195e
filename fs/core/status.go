package core

import "io/fs"

// FileType classifies a filesystem entry.
type FileType int

const (
	// StatusError means the status query itself failed.
	StatusError FileType = iota
	// FileNotFound means the query succeeded and nothing exists there.
	FileNotFound
	// RegularFile is an ordinary file.
	RegularFile
	// DirectoryFile is a directory.
	DirectoryFile
	// SymlinkFile is a symbolic link, reported only when links are not
	// followed.
	SymlinkFile
	// BlockFile is a block device.
	BlockFile
	// CharacterFile is a character device.
	CharacterFile
	// FifoFile is a named pipe.
	FifoFile
	// SocketFile is a Unix domain socket.
	SocketFile
	// TypeUnknown is an entry whose kind the backend cannot name.
	TypeUnknown
)

// String returns the snake_case name of the file type.
func (t FileType) String() string {
	switch t {
	case StatusError:
		return "status_error"
	case FileNotFound:
		return "file_not_found"
	case RegularFile:
		return "regular_file"
	case DirectoryFile:
		return "directory_file"
	case SymlinkFile:
		return "symlink_file"
	case BlockFile:
		return "block_file"
	case CharacterFile:
		return "character_file"
	case FifoFile:
		return "fifo_file"
	case SocketFile:
		return "socket_file"
	default:
		return "type_unknown"
	}
}

// FileStatus is the answer to a status query: a file type plus the
// permission bits, which are carried but never interpreted.
type FileStatus struct {
	Type  FileType
	Perms fs.FileMode
}

// StatusKnown reports whether the query that produced s succeeded.
func (s FileStatus) StatusKnown() bool {
	return s.Type != StatusError
}

// Exists reports whether s describes an existing entry.
func (s FileStatus) Exists() bool {
	return s.StatusKnown() && s.Type != FileNotFound
}

// IsRegularFile reports whether s describes a regular file.
func (s FileStatus) IsRegularFile() bool {
	return s.Type == RegularFile
}

// IsDirectory reports whether s describes a directory.
func (s FileStatus) IsDirectory() bool {
	return s.Type == DirectoryFile
}

// IsSymlink reports whether s describes a symbolic link.
func (s FileStatus) IsSymlink() bool {
	return s.Type == SymlinkFile
}

// IsOther reports whether s describes an existing entry that is neither a
// regular file, a directory nor a symbolic link.
func (s FileStatus) IsOther() bool {
	return s.Exists() && !s.IsRegularFile() && !s.IsDirectory() && !s.IsSymlink()
}

// StatusOf classifies file info returned by a backend.
func StatusOf(info fs.FileInfo) FileStatus {
	mode := info.Mode()
	st := FileStatus{Perms: mode.Perm()}
	switch {
	case mode.IsRegular():
		st.Type = RegularFile
	case mode.IsDir():
		st.Type = DirectoryFile
	case mode&fs.ModeSymlink != 0:
		st.Type = SymlinkFile
	case mode&fs.ModeCharDevice != 0:
		st.Type = CharacterFile
	case mode&fs.ModeDevice != 0:
		st.Type = BlockFile
	case mode&fs.ModeNamedPipe != 0:
		st.Type = FifoFile
	case mode&fs.ModeSocket != 0:
		st.Type = SocketFile
	default:
		st.Type = TypeUnknown
	}
	return st
}

// SpaceInfo describes the capacity of a volume in bytes. Available is the
// space usable by the caller, which may be less than Free.
type SpaceInfo struct {
	Capacity  uint64
	Free      uint64
	Available uint64
}
