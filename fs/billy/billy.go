package billy

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/xaviervia/fast/fs/core"
)

// LocalFS wraps billy's osfs for host filesystem access.
type LocalFS struct {
	backend
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	backend
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot sets the directory relative paths are resolved against.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// Relative paths resolve against the working directory unless WithRoot is
// given. Absolute paths are used as-is.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.root == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = string(filepath.Separator)
		}
		cfg.root = wd
	}
	root, err := filepath.Abs(cfg.root)
	if err != nil {
		root = filepath.Clean(cfg.root)
	}

	return &LocalFS{backend{
		bfs: osfs.New(string(filepath.Separator)),
		resolve: func(name string) string {
			if !filepath.IsAbs(name) {
				name = filepath.Join(root, name)
			}
			return filepath.Clean(name)
		},
	}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty. Relative paths resolve against "/"
// unless WithRoot is given.
func NewMemory(opts ...Option) *MemoryFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	root := path.Join("/", filepath.ToSlash(cfg.root))

	bfs := memfs.New()
	_ = bfs.MkdirAll(root, 0o755)

	return &MemoryFS{backend{
		bfs: bfs,
		resolve: func(name string) string {
			name = filepath.ToSlash(name)
			if !path.IsAbs(name) {
				name = path.Join(root, name)
			}
			return path.Clean(name)
		},
	}}
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// backend holds the behavior shared by both providers. Every exported
// method resolves its path arguments before touching bfs.
type backend struct {
	bfs     billy.Filesystem
	resolve func(string) string
}

// Unwrap returns the underlying billy.Filesystem.
func (b *backend) Unwrap() billy.Filesystem {
	return b.bfs
}

// Abs returns the absolute form of name.
func (b *backend) Abs(name string) (string, error) {
	return b.resolve(name), nil
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info iofs.FileInfo
}

func (d *dirEntry) Name() string                 { return d.info.Name() }
func (d *dirEntry) IsDir() bool                  { return d.info.IsDir() }
func (d *dirEntry) Type() iofs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (iofs.FileInfo, error) { return d.info, nil }

// Stat returns file metadata for the named file.
func (b *backend) Stat(name string) (iofs.FileInfo, error) {
	return b.bfs.Stat(b.resolve(name))
}

// ReadDir returns the entries of the named directory sorted by name.
func (b *backend) ReadDir(name string) ([]iofs.DirEntry, error) {
	resolved := b.resolve(name)
	info, err := b.bfs.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &iofs.PathError{Op: "readdir", Path: name, Err: core.ErrNotDir}
	}

	// Billy's ReadDir returns []fs.FileInfo, we need []fs.DirEntry
	infos, err := b.bfs.ReadDir(resolved)
	if err != nil {
		return nil, err
	}
	entries := make([]iofs.DirEntry, 0, len(infos))
	for _, info := range infos {
		if info.Name() == "." || info.Name() == ".." {
			continue
		}
		entries = append(entries, &dirEntry{info: info})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *backend) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(b.resolve(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
// A path running through a regular file counts as missing.
func (b *backend) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(b.resolve(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating or truncating it.
func (b *backend) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	return b.writeFile(name, data, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

// AppendFile appends data to the named file, creating it if necessary.
func (b *backend) AppendFile(name string, data []byte, perm iofs.FileMode) error {
	return b.writeFile(name, data, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
}

func (b *backend) writeFile(name string, data []byte, flag int, perm iofs.FileMode) error {
	resolved := b.resolve(name)
	info, err := b.bfs.Stat(filepath.Dir(resolved))
	if err != nil {
		return &iofs.PathError{Op: "write", Path: name, Err: iofs.ErrNotExist}
	}
	if !info.IsDir() {
		return &iofs.PathError{Op: "write", Path: name, Err: core.ErrNotDir}
	}

	f, err := b.bfs.OpenFile(resolved, flag, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Mkdir creates a single directory.
// Unlike MkdirAll, this fails if the parent directory does not exist.
func (b *backend) Mkdir(name string, perm iofs.FileMode) error {
	resolved := b.resolve(name)
	if _, err := b.bfs.Stat(resolved); err == nil {
		return &iofs.PathError{Op: "mkdir", Path: name, Err: iofs.ErrExist}
	}

	parent := path.Dir(filepath.ToSlash(resolved))
	if parent != "." && parent != "/" {
		info, err := b.bfs.Stat(filepath.FromSlash(parent))
		if err != nil {
			return &iofs.PathError{Op: "mkdir", Path: name, Err: iofs.ErrNotExist}
		}
		if !info.IsDir() {
			return &iofs.PathError{Op: "mkdir", Path: name, Err: core.ErrNotDir}
		}
	}

	// MkdirAll won't create parents since we verified the parent exists
	return b.bfs.MkdirAll(resolved, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
// A file anywhere along the path fails with core.ErrNotDir.
func (b *backend) MkdirAll(name string, perm iofs.FileMode) error {
	resolved := b.resolve(name)
	for _, dir := range ancestors(resolved) {
		info, err := b.bfs.Stat(dir)
		if err != nil {
			break
		}
		if !info.IsDir() {
			return &iofs.PathError{Op: "mkdir", Path: name, Err: core.ErrNotDir}
		}
	}
	return b.bfs.MkdirAll(resolved, perm)
}

// ancestors returns p and its parents, outermost first.
func ancestors(p string) []string {
	var dirs []string
	for {
		dirs = append([]string{p}, dirs...)
		parent := filepath.Dir(p)
		if parent == p || parent == "." {
			return dirs
		}
		p = parent
	}
}

// Remove removes the named file or empty directory.
func (b *backend) Remove(name string) error {
	resolved := b.resolve(name)
	info, err := b.bfs.Lstat(resolved)
	if err != nil {
		return err
	}
	if info.IsDir() {
		children, err := b.bfs.ReadDir(resolved)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return &iofs.PathError{Op: "remove", Path: name, Err: core.ErrDirNotEmpty}
		}
	}
	return b.bfs.Remove(resolved)
}

// Rename renames (moves) oldpath to newpath.
func (b *backend) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(b.resolve(oldpath), b.resolve(newpath))
}

// Rename renames (moves) oldpath to newpath.
// memfs moves every path sharing the textual prefix of oldpath (renaming
// "a" drags "ab" along), so entries are relocated one by one instead.
func (mfs *MemoryFS) Rename(oldpath, newpath string) error {
	from, to := mfs.resolve(oldpath), mfs.resolve(newpath)
	if from == to {
		return nil
	}
	info, err := mfs.bfs.Lstat(from)
	if err != nil {
		return &iofs.PathError{Op: "rename", Path: oldpath, Err: iofs.ErrNotExist}
	}
	if parent, err := mfs.bfs.Stat(path.Dir(to)); err != nil || !parent.IsDir() {
		return &iofs.PathError{Op: "rename", Path: newpath, Err: iofs.ErrNotExist}
	}
	if existing, err := mfs.bfs.Stat(to); err == nil && (info.IsDir() || existing.IsDir()) {
		return &iofs.PathError{Op: "rename", Path: newpath, Err: iofs.ErrExist}
	}
	if info.IsDir() && strings.HasPrefix(to, from+"/") {
		return &iofs.PathError{Op: "rename", Path: newpath, Err: iofs.ErrInvalid}
	}
	return mfs.move(from, to, info)
}

func (mfs *MemoryFS) move(from, to string, info iofs.FileInfo) error {
	if !info.IsDir() {
		data, err := mfs.ReadFile(from)
		if err != nil {
			return err
		}
		if err := mfs.writeFile(to, data, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()); err != nil {
			return err
		}
		return mfs.bfs.Remove(from)
	}

	if err := mfs.bfs.MkdirAll(to, info.Mode().Perm()); err != nil {
		return err
	}
	children, err := mfs.bfs.ReadDir(from)
	if err != nil {
		return err
	}
	for _, entry := range children {
		if err := mfs.move(path.Join(from, entry.Name()), path.Join(to, entry.Name()), entry); err != nil {
			return err
		}
	}
	return mfs.bfs.Remove(from)
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root. Paths handed to walkFn keep the
// caller's form of root.
func (b *backend) Walk(root string, walkFn iofs.WalkDirFunc) error {
	root = path.Clean(filepath.ToSlash(root))
	info, err := b.bfs.Stat(b.resolve(root))
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = b.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, iofs.SkipDir) || errors.Is(err, iofs.SkipAll) {
		return nil
	}
	return err
}

func (b *backend) walk(name string, d iofs.DirEntry, walkFn iofs.WalkDirFunc) error {
	if err := walkFn(name, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, iofs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := b.ReadDir(name)
	if err != nil {
		if err = walkFn(name, d, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if err := b.walk(path.Join(name, entry.Name()), entry, walkFn); err != nil {
			if errors.Is(err, iofs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.FS    = (*LocalFS)(nil)
	_ core.FS    = (*MemoryFS)(nil)
	_ core.AbsFS = (*LocalFS)(nil)
	_ core.AbsFS = (*MemoryFS)(nil)
)
