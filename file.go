package fast

import (
	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/core"
)

// File is a single-file handle. It optionally carries a path; operations
// given a path argument bind the handle to it. Once content has been read
// or written through the handle, String returns that content instead of
// the path.
type File struct {
	path    string
	hasPath bool
	content []byte
	loaded  bool
	*env
}

// NewFile returns a File without a path.
func NewFile(opts ...Option) *File {
	return &File{env: newEnv(opts)}
}

// FileAt returns a File bound to p. The file need not exist.
func FileAt(p string, opts ...Option) *File {
	f := NewFile(opts...)
	f.path, f.hasPath = p, true
	return f
}

// Path returns the handle's path and whether one is set.
func (f *File) Path() (string, bool) {
	return f.path, f.hasPath
}

// String returns the loaded content, or the path when nothing has been
// loaded.
func (f *File) String() string {
	if f.loaded {
		return string(f.content)
	}
	return f.path
}

// FS returns the filesystem the handle operates on.
func (f *File) FS() core.FS {
	return f.fs
}

// bind resolves the optional path argument and binds the handle to it.
func (f *File) bind(op string, args []PathLike) (string, error) {
	switch len(args) {
	case 0:
		if !f.hasPath {
			return "", noArguments(op)
		}
		return f.path, nil
	case 1:
		paths, err := normalizeAll(op, args)
		if err != nil {
			return "", err
		}
		if paths[0] != f.path {
			f.content, f.loaded = nil, false
		}
		f.path, f.hasPath = paths[0], true
		return f.path, nil
	default:
		return "", tooManyArguments(op, 1, len(args))
	}
}

// Exists reports whether the file exists. Directories do not count.
func (f *File) Exists(p ...PathLike) (bool, error) {
	target, err := f.bind("exists", p)
	if err != nil {
		return false, err
	}
	return f.mutator.Files().Exists(target)
}

// Read returns the whole content of the file and keeps it on the handle.
func (f *File) Read(p ...PathLike) (string, error) {
	target, err := f.bind("read", p)
	if err != nil {
		return "", err
	}
	data, err := f.mutator.Files().ReadAll(target)
	if err != nil {
		return "", err
	}
	f.content, f.loaded = data, true
	return string(data), nil
}

// Write replaces the content of the file, creating it and its parent
// directories as needed. Returns the file path.
func (f *File) Write(content string, p ...PathLike) (string, error) {
	target, err := f.bind("write", p)
	if err != nil {
		return "", err
	}
	if err := f.mutator.Files().WriteAll(target, []byte(content)); err != nil {
		return "", err
	}
	f.content, f.loaded = []byte(content), true
	return target, nil
}

// Append adds content to the end of the file, creating it and its parent
// directories as needed. Returns the file path.
func (f *File) Append(content string, p ...PathLike) (string, error) {
	target, err := f.bind("append", p)
	if err != nil {
		return "", err
	}
	if err := f.mutator.Files().Append(target, []byte(content)); err != nil {
		return "", err
	}
	if f.loaded {
		f.content = append(f.content, content...)
	}
	return target, nil
}

// Touch creates an empty file, and its parent directories, unless it
// already exists. Existing content is kept. Returns the file path.
func (f *File) Touch(p ...PathLike) (string, error) {
	target, err := f.bind("touch", p)
	if err != nil {
		return "", err
	}
	return target, f.mutator.Files().Touch(target)
}

// Create is Touch that fails with CodeAlreadyExists when the file exists.
func (f *File) Create(p ...PathLike) (string, error) {
	target, err := f.bind("create", p)
	if err != nil {
		return "", err
	}
	ok, err := f.fs.Exists(target)
	if err != nil {
		return "", wrapFS(err, "create", target)
	}
	if ok {
		return "", errors.WithContextMap(
			errors.Newf(errors.CodeAlreadyExists, "%q already exists", target),
			map[string]interface{}{"operation": "create", "path": target},
		)
	}
	return target, f.mutator.Files().Touch(target)
}

// CreateForce is an alias for Touch.
func (f *File) CreateForce(p ...PathLike) (string, error) {
	return f.Touch(p...)
}

// Delete removes the file and returns its path. It fails with CodeNotFound
// when the file does not exist.
func (f *File) Delete(p ...PathLike) (string, error) {
	target, err := f.bind("delete", p)
	if err != nil {
		return "", err
	}
	if err := f.mutator.Files().Delete(target); err != nil {
		return "", err
	}
	f.content, f.loaded = nil, false
	return target, nil
}

// DeleteForce is Delete where a missing file is not an error. The result
// is "" when there was nothing to delete.
func (f *File) DeleteForce(p ...PathLike) (string, error) {
	target, err := f.Delete(p...)
	if errors.GetCode(err) == errors.CodeNotFound {
		return "", nil
	}
	return target, err
}

// Remove is an alias for Delete.
func (f *File) Remove(p ...PathLike) (string, error) {
	return f.Delete(p...)
}

// Unlink is an alias for Delete.
func (f *File) Unlink(p ...PathLike) (string, error) {
	return f.Delete(p...)
}

// Expand returns the absolute form of the file path.
func (f *File) Expand(p ...PathLike) (string, error) {
	target, err := f.bind("expand", p)
	if err != nil {
		return "", err
	}
	return expand(f.fs, target)
}

// Absolute is an alias for Expand.
func (f *File) Absolute(p ...PathLike) (string, error) {
	return f.Expand(p...)
}

// ExistAll reports whether every path is an existing file. Without
// arguments the handle's path is checked.
func (f *File) ExistAll(paths ...PathLike) (bool, error) {
	targets, err := f.targets("exists", paths)
	if err != nil {
		return false, err
	}
	return all(targets, f.mutator.Files().Exists)
}

// ExistAny reports whether at least one path is an existing file. Without
// arguments the handle's path is checked.
func (f *File) ExistAny(paths ...PathLike) (bool, error) {
	targets, err := f.targets("exists", paths)
	if err != nil {
		return false, err
	}
	return anyOf(targets, f.mutator.Files().Exists)
}

func (f *File) targets(op string, args []PathLike) ([]string, error) {
	if len(args) == 0 {
		if !f.hasPath {
			return nil, noArguments(op)
		}
		return []string{f.path}, nil
	}
	return normalizeAll(op, args)
}
