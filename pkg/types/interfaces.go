package types

import "io/fs"

// FS is the filesystem abstraction used by netloc operations. The
// production implementation wraps the os package; tests use an
// in-memory implementation.
type FS interface {
	// Stat returns file info, following symlinks
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns file info without following symlinks
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns the contents
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory path along with any necessary parents
	MkdirAll(path string, perm fs.FileMode) error

	// Rename renames (moves) a file or directory
	Rename(oldpath, newpath string) error

	// Symlink creates a symbolic link
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link
	Readlink(name string) (string, error)
}

// LinkResolver resolves the target path stored in a shortcut entry of
// the network-shortcuts container.
//
// ResolveTarget inspects the entry name inside dir and returns the
// stored target path. An entry that is not a shortcut at all (missing,
// or not carrying a link) yields ("", nil); a shortcut that exists but
// cannot be decoded yields an error. Callers enumerating a container
// treat both as a skip; single-entry callers surface the error.
type LinkResolver interface {
	ResolveTarget(dir, name string) (string, error)
}
