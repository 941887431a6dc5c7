package fast

import (
	"path/filepath"
	"strings"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/core"
	"github.com/xaviervia/fast/tree"
)

// Dir is a directory handle. It optionally carries a path and caches the
// names returned by the last List, Files or Dirs call. The cache is never
// refreshed implicitly and may be stale. Dropping a Dir has no effect on
// the filesystem.
type Dir struct {
	path    string
	hasPath bool
	entries []string
	*env
}

// Entry is a handle returned by Dir.Lookup and Dir.Put: a *Dir or a *File.
type Entry interface {
	PathLike
	Path() (string, bool)
	String() string
}

// NewDir returns a Dir without a path.
func NewDir(opts ...Option) *Dir {
	return &Dir{env: newEnv(opts)}
}

// DirAt returns a Dir bound to p. The directory need not exist.
func DirAt(p string, opts ...Option) *Dir {
	d := NewDir(opts...)
	d.path, d.hasPath = p, true
	return d
}

func (d *Dir) derive(p string) *Dir {
	return &Dir{path: p, hasPath: true, env: d.env}
}

func (d *Dir) file(p string) *File {
	return &File{path: p, hasPath: true, env: d.env}
}

// Path returns the handle's path and whether one is set.
func (d *Dir) Path() (string, bool) {
	return d.path, d.hasPath
}

// String returns the handle's path, or "" when none is set.
func (d *Dir) String() string {
	return d.path
}

// FS returns the filesystem the handle operates on.
func (d *Dir) FS() core.FS {
	return d.fs
}

// base is the directory relative operations are anchored to.
func (d *Dir) base() string {
	if d.hasPath {
		return d.path
	}
	return "."
}

// targets returns the normalized arguments, or the handle's path when
// there are none.
func (d *Dir) targets(op string, args []PathLike) ([]string, error) {
	if len(args) == 0 {
		if !d.hasPath {
			return nil, noArguments(op)
		}
		return []string{d.path}, nil
	}
	return normalizeAll(op, args)
}

// target is targets for operations taking at most one argument.
func (d *Dir) target(op string, args []PathLike) (string, error) {
	if len(args) > 1 {
		return "", tooManyArguments(op, 1, len(args))
	}
	paths, err := d.targets(op, args)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// pair resolves the (source, target) arguments of two-path operations.
// With a single argument the handle's path is the source.
func (d *Dir) pair(op string, args []PathLike) (string, string, error) {
	switch len(args) {
	case 0:
		return "", "", noArguments(op)
	case 1:
		if !d.hasPath {
			return "", "", errors.WithContext(
				errors.New(errors.CodeInvalidArgument, "a single argument requires a handle path"),
				"operation", op,
			)
		}
		paths, err := normalizeAll(op, args)
		if err != nil {
			return "", "", err
		}
		return d.path, paths[0], nil
	case 2:
		paths, err := normalizeAll(op, args)
		if err != nil {
			return "", "", err
		}
		return paths[0], paths[1], nil
	default:
		return "", "", tooManyArguments(op, 2, len(args))
	}
}

// List returns the names of every entry of the directory and caches them.
// A path argument also binds the handle to it.
func (d *Dir) List(p ...PathLike) ([]string, error) {
	return d.refresh("list", p, d.mutator.Lister().List)
}

// Files is List restricted to regular files.
func (d *Dir) Files(p ...PathLike) ([]string, error) {
	return d.refresh("files", p, d.mutator.Lister().Files)
}

// Dirs is List restricted to subdirectories.
func (d *Dir) Dirs(p ...PathLike) ([]string, error) {
	return d.refresh("dirs", p, d.mutator.Lister().Dirs)
}

func (d *Dir) refresh(op string, args []PathLike, list func(string) ([]string, error)) ([]string, error) {
	target, err := d.target(op, args)
	if err != nil {
		return nil, err
	}
	names, err := list(target)
	if err != nil {
		return nil, err
	}
	d.path, d.hasPath = target, true
	d.entries = names
	d.log.Debug("directory listed", "operation", op, "path", target, "entries", len(names))
	return d.Entries(), nil
}

// Entries returns a copy of the cached listing.
func (d *Dir) Entries() []string {
	return append([]string(nil), d.entries...)
}

// Len returns the length of the cached listing.
func (d *Dir) Len() int {
	return len(d.entries)
}

// Filter returns the cached listing for filtering.
func (d *Dir) Filter() Entries {
	return Entries(d.Entries())
}

// At returns the cached entry at i. Negative indexes count from the end.
func (d *Dir) At(i int) (string, error) {
	idx, err := d.index(i)
	if err != nil {
		return "", err
	}
	return d.entries[idx], nil
}

// SetAt replaces the cached entry at i. Only the cache changes.
func (d *Dir) SetAt(i int, name string) error {
	idx, err := d.index(i)
	if err != nil {
		return err
	}
	d.entries[idx] = name
	return nil
}

func (d *Dir) index(i int) (int, error) {
	idx := i
	if idx < 0 {
		idx += len(d.entries)
	}
	if idx < 0 || idx >= len(d.entries) {
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "index %d out of range for %d entries", i, len(d.entries)),
			"operation", "index",
		)
	}
	return idx, nil
}

// Lookup resolves name against the live subdirectories and then the live
// files of the directory. The returned Entry is a *Dir or a *File bound to
// the child path.
func (d *Dir) Lookup(name PathLike) (Entry, bool, error) {
	n, err := d.name("lookup", name)
	if err != nil {
		return nil, false, err
	}
	lister := d.mutator.Lister()

	dirs, err := lister.Dirs(d.base())
	if err != nil {
		return nil, false, err
	}
	if contains(dirs, n) {
		return d.derive(join(d.base(), n)), true, nil
	}

	files, err := lister.Files(d.base())
	if err != nil {
		return nil, false, err
	}
	if contains(files, n) {
		return d.file(join(d.base(), n)), true, nil
	}
	return nil, false, nil
}

// Put stores content under name. A tree.Node is materialized as the
// subdirectory name and a *Dir is returned; a tree.Leaf is written to the
// file name, creating parent directories, and a *File is returned.
func (d *Dir) Put(name PathLike, content tree.Literal) (Entry, error) {
	n, err := d.name("put", name)
	if err != nil {
		return nil, err
	}
	p := join(d.base(), n)

	switch value := content.(type) {
	case tree.Node:
		if err := d.mutator.Materialize(p, value); err != nil {
			return nil, err
		}
		return d.derive(p), nil
	case tree.Leaf:
		if err := d.mutator.Files().WriteAll(p, []byte(value)); err != nil {
			return nil, err
		}
		f := d.file(p)
		f.content, f.loaded = []byte(value), true
		return f, nil
	default:
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "unsupported content %T", content),
			"operation", "put",
		)
	}
}

func (d *Dir) name(op string, name PathLike) (string, error) {
	paths, err := normalizeAll(op, []PathLike{name})
	if err != nil {
		return "", err
	}
	if paths[0] == "" {
		return "", errors.WithContext(errors.New(errors.CodeInvalidArgument, "empty name"), "operation", op)
	}
	return paths[0], nil
}

// Create creates each directory with its missing parents and returns a
// handle bound to the last one. It fails with CodeAlreadyExists when a
// directory already exists.
func (d *Dir) Create(paths ...PathLike) (*Dir, error) {
	return d.create("create", paths, d.mutator.Create)
}

// CreateForce is Create where existing directories are not an error.
func (d *Dir) CreateForce(paths ...PathLike) (*Dir, error) {
	return d.create("create", paths, d.mutator.CreateForce)
}

func (d *Dir) create(op string, args []PathLike, create func(string) error) (*Dir, error) {
	targets, err := d.targets(op, args)
	if err != nil {
		return nil, err
	}
	for _, p := range targets {
		if err := create(p); err != nil {
			return nil, err
		}
	}
	last := targets[len(targets)-1]
	if d.hasPath && last == d.path {
		return d, nil
	}
	return d.derive(last), nil
}

// Build materializes node rooted at the handle's path, or at the current
// directory when the handle has none, and returns the root handle.
func (d *Dir) Build(node tree.Node) (*Dir, error) {
	if err := d.mutator.Materialize(d.base(), node); err != nil {
		return nil, err
	}
	if d.hasPath {
		return d, nil
	}
	return d.derive(d.base()), nil
}

// Delete removes each directory tree and returns the last path. It fails
// with CodeNotFound when a path is not an existing directory.
func (d *Dir) Delete(paths ...PathLike) (string, error) {
	targets, err := d.targets("delete", paths)
	if err != nil {
		return "", err
	}
	for _, p := range targets {
		if err := d.mutator.Delete(p); err != nil {
			return "", err
		}
	}
	return targets[len(targets)-1], nil
}

// DeleteForce is Delete where missing directories are skipped. The result
// is the last path, or "" when the last directory was already gone.
func (d *Dir) DeleteForce(paths ...PathLike) (string, error) {
	targets, err := d.targets("delete", paths)
	if err != nil {
		return "", err
	}
	result := ""
	for _, p := range targets {
		existed, err := d.isDir(p)
		if err != nil {
			return "", err
		}
		if err := d.mutator.DeleteForce(p); err != nil {
			return "", err
		}
		result = ""
		if existed {
			result = p
		}
	}
	return result, nil
}

// Remove is an alias for Delete.
func (d *Dir) Remove(paths ...PathLike) (string, error) {
	return d.Delete(paths...)
}

// RemoveForce is an alias for DeleteForce.
func (d *Dir) RemoveForce(paths ...PathLike) (string, error) {
	return d.DeleteForce(paths...)
}

// Copy replicates a directory tree. With two arguments they are the source
// and the target; with one the handle is the source. It returns a handle
// for the source so calls can be chained.
func (d *Dir) Copy(args ...PathLike) (*Dir, error) {
	return d.copy(args, d.mutator.Copy)
}

// CopyForce is Copy onto a possibly existing target, overwriting
// conflicting files.
func (d *Dir) CopyForce(args ...PathLike) (*Dir, error) {
	return d.copy(args, d.mutator.CopyForce)
}

func (d *Dir) copy(args []PathLike, copyTree func(string, string) error) (*Dir, error) {
	src, dst, err := d.pair("copy", args)
	if err != nil {
		return nil, err
	}
	if err := copyTree(src, dst); err != nil {
		return nil, err
	}
	return d.self(src), nil
}

// Rename moves a directory tree and returns a handle bound to the target.
// Arguments follow Copy. It fails with CodeAlreadyExists when anything
// exists at the target.
func (d *Dir) Rename(args ...PathLike) (*Dir, error) {
	return d.rename(args, d.mutator.Rename)
}

// RenameForce is Rename that first deletes whatever exists at the target.
func (d *Dir) RenameForce(args ...PathLike) (*Dir, error) {
	return d.rename(args, d.mutator.RenameForce)
}

func (d *Dir) rename(args []PathLike, rename func(string, string) error) (*Dir, error) {
	src, dst, err := d.pair("rename", args)
	if err != nil {
		return nil, err
	}
	if err := rename(src, dst); err != nil {
		return nil, err
	}
	return d.derive(dst), nil
}

// Move is an alias for Rename.
func (d *Dir) Move(args ...PathLike) (*Dir, error) {
	return d.Rename(args...)
}

// MoveForce is an alias for RenameForce.
func (d *Dir) MoveForce(args ...PathLike) (*Dir, error) {
	return d.RenameForce(args...)
}

// Merge moves the content of a target directory into a current one and
// deletes the target. With two arguments they are current and target;
// with one the argument is merged into the handle. Returns a handle bound
// to current.
func (d *Dir) Merge(args ...PathLike) (*Dir, error) {
	return d.merge(args, d.mutator.Merge)
}

// MergeForce is Merge where missing directories are not an error.
func (d *Dir) MergeForce(args ...PathLike) (*Dir, error) {
	return d.merge(args, d.mutator.MergeForce)
}

func (d *Dir) merge(args []PathLike, merge func(string, string) error) (*Dir, error) {
	current, target, err := d.pair("merge", args)
	if err != nil {
		return nil, err
	}
	if err := merge(current, target); err != nil {
		return nil, err
	}
	return d.self(current), nil
}

// ConflictsWith reports whether merging would drop or refuse content:
// whether a name appears at the same relative path in both trees without
// being a directory on both sides. Arguments follow Merge.
func (d *Dir) ConflictsWith(args ...PathLike) (bool, error) {
	current, target, err := d.pair("conflicts", args)
	if err != nil {
		return false, err
	}
	return d.mutator.ConflictsWith(current, target)
}

// Exists reports whether p, or the handle's path, is an existing
// directory.
func (d *Dir) Exists(p ...PathLike) (bool, error) {
	target, err := d.target("exists", p)
	if err != nil {
		return false, err
	}
	return d.isDir(target)
}

// ExistAll reports whether every path is an existing directory.
func (d *Dir) ExistAll(paths ...PathLike) (bool, error) {
	targets, err := d.targets("exists", paths)
	if err != nil {
		return false, err
	}
	return all(targets, d.isDir)
}

// ExistAny reports whether at least one path is an existing directory.
func (d *Dir) ExistAny(paths ...PathLike) (bool, error) {
	targets, err := d.targets("exists", paths)
	if err != nil {
		return false, err
	}
	return anyOf(targets, d.isDir)
}

// Expand returns the absolute form of p, or of the handle's path.
func (d *Dir) Expand(p ...PathLike) (string, error) {
	target, err := d.target("expand", p)
	if err != nil {
		return "", err
	}
	return expand(d.fs, target)
}

// Absolute is an alias for Expand.
func (d *Dir) Absolute(p ...PathLike) (string, error) {
	return d.Expand(p...)
}

// self returns d when it is bound to p, else a new handle bound to p.
func (d *Dir) self(p string) *Dir {
	if d.hasPath && d.path == p {
		return d
	}
	return d.derive(p)
}

func (d *Dir) isDir(p string) (bool, error) {
	ok, err := d.fs.Exists(p)
	if err != nil || !ok {
		return false, wrapFS(err, "exists", p)
	}
	info, err := d.fs.Stat(p)
	if err != nil {
		return false, wrapFS(err, "exists", p)
	}
	return info.IsDir(), nil
}

func expand(filesystem core.FS, p string) (string, error) {
	if afs, ok := filesystem.(core.AbsFS); ok {
		abs, err := afs.Abs(p)
		return abs, wrapFS(err, "expand", p)
	}
	abs, err := filepath.Abs(p)
	return abs, wrapFS(err, "expand", p)
}

func wrapFS(err error, op, p string) error {
	return tree.Classify(err, op, p)
}

func join(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func all(paths []string, check func(string) (bool, error)) (bool, error) {
	for _, p := range paths {
		ok, err := check(p)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func anyOf(paths []string, check func(string) (bool, error)) (bool, error) {
	for _, p := range paths {
		ok, err := check(p)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}
