package tree

// FileStore moves leaf content in and out of single files.
type FileStore interface {
	// Exists reports whether a regular file exists at p.
	Exists(p string) (bool, error)

	// ReadAll returns the whole content of p. Fails with CodeNotFound when p
	// does not exist.
	ReadAll(p string) ([]byte, error)

	// WriteAll replaces the content of p, creating p and its parent
	// directories as needed.
	WriteAll(p string, data []byte) error

	// Append adds data to the end of p, creating p and its parent
	// directories as needed.
	Append(p string, data []byte) error

	// Delete removes the file at p. Fails with CodeNotFound when p does not
	// exist.
	Delete(p string) error

	// Touch creates an empty file at p (and its parents) unless it already
	// exists. Existing content is never truncated.
	Touch(p string) error
}

// Lister enumerates a single directory level. All results are sorted by
// name and never include "." or "..".
type Lister interface {
	// List returns the names of every entry in p.
	List(p string) ([]string, error)

	// Files returns the names of the entries of p that are regular files.
	// Symlinks and other special entries appear in List only.
	Files(p string) ([]string, error)

	// Dirs returns the names of the entries of p that are directories.
	Dirs(p string) ([]string, error)
}
