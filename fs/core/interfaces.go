package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
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

// FS is the filesystem contract every provider implements.
type FS interface {
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only operations.
type ReadFS interface {
	// Stat returns metadata for the named file or directory.
	// Missing paths yield an error matching fs.ErrNotExist.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of one directory level sorted by name.
	// The "." and ".." entries are never included.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined (e.g. permission denied), not that the path is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// WriteFile writes data to the named file, creating or truncating it.
	// The parent directory must exist.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// AppendFile appends data to the named file, creating it if necessary.
	// The parent directory must exist. Appending nil data creates an empty
	// file without touching existing content.
	AppendFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with an error matching
	// fs.ErrExist if the path exists and with fs.ErrNotExist if the parent
	// is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// If path is already a directory, MkdirAll does nothing.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal and renaming.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// Missing paths yield an error matching fs.ErrNotExist; non-empty
	// directories yield an error.
	Remove(name string) error

	// Rename moves oldpath to newpath. If newpath exists and is a file it is
	// replaced.
	Rename(oldpath, newpath string) error
}

// WalkFS defines depth-first traversal.
type WalkFS interface {
	// Walk visits root and everything below it in lexical order, calling
	// walkFn for each entry. fs.SkipDir and fs.SkipAll are honored.
	// Symbolic links are not followed.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// AbsFS is implemented by providers that can expand a path to its absolute
// form. Use a type assertion to check for it:
//
//	if afs, ok := filesystem.(core.AbsFS); ok {
//	    abs, err := afs.Abs("demo")
//	}
type AbsFS interface {
	// Abs returns the absolute, cleaned form of name. No symlinks are
	// resolved and the path need not exist.
	Abs(name string) (string, error)
}
