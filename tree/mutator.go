package tree

import (
	"path"
	"strings"
	"time"

	"github.com/xaviervia/fast/fs/core"
	"github.com/xaviervia/fast/internal/logging"
)

// Mutator performs recursive tree operations on a filesystem.
// A Mutator holds no state between calls and provides no locking.
type Mutator struct {
	fs     core.FS
	files  FileStore
	lister Lister
	log    *logging.Logger
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithFileStore replaces the FileStore used for leaf content.
func WithFileStore(store FileStore) Option {
	return func(m *Mutator) {
		m.files = store
	}
}

// WithLister replaces the Lister used to enumerate directories.
func WithLister(lister Lister) Option {
	return func(m *Mutator) {
		m.lister = lister
	}
}

// WithLogger sets the logger operations are reported to.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Mutator) {
		m.log = logger
	}
}

// New creates a Mutator over filesystem. Unless overridden by options, leaf
// content and listings go through filesystem as well and nothing is logged.
func New(filesystem core.FS, opts ...Option) *Mutator {
	m := &Mutator{
		fs:  filesystem,
		log: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.files == nil {
		m.files = NewFileStore(filesystem)
	}
	if m.lister == nil {
		m.lister = NewLister(filesystem)
	}
	return m
}

// FS returns the filesystem the mutator operates on.
func (m *Mutator) FS() core.FS {
	return m.fs
}

// Files returns the FileStore used for leaf content.
func (m *Mutator) Files() FileStore {
	return m.files
}

// Lister returns the Lister used to enumerate directories.
func (m *Mutator) Lister() Lister {
	return m.lister
}

// track logs the outcome of op once the returned func runs.
//
//	defer m.track(logging.OpCopy, &err, "source", src)()
func (m *Mutator) track(op logging.Operation, errp *error, args ...any) func() {
	start := time.Now()
	return func() {
		logging.LogOperation(m.log, op, time.Since(start), *errp, args...)
	}
}

// leaves returns the entries of p that are not directories. Unlike
// Lister.Files it keeps symlinks and special files, which a removal or
// relocation of p must handle as well.
func (m *Mutator) leaves(p string) ([]string, error) {
	names, err := m.lister.List(p)
	if err != nil {
		return nil, err
	}
	dirs, err := m.lister.Dirs(p)
	if err != nil {
		return nil, err
	}
	skip := make(map[string]struct{}, len(dirs))
	for _, name := range dirs {
		skip[name] = struct{}{}
	}
	out := make([]string, 0, len(names)-len(dirs))
	for _, name := range names {
		if _, ok := skip[name]; !ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// isDir reports whether p is an existing directory. Missing paths and paths
// running through files are reported as false without error.
func (m *Mutator) isDir(p string) (bool, error) {
	ok, err := m.fs.Exists(p)
	if err != nil {
		return false, classify(err, "stat", p)
	}
	if !ok {
		return false, nil
	}
	info, err := m.fs.Stat(p)
	if err != nil {
		return false, classify(err, "stat", p)
	}
	return info.IsDir(), nil
}

func (m *Mutator) exists(p string) (bool, error) {
	ok, err := m.fs.Exists(p)
	return ok, classify(err, "stat", p)
}

// requireDir fails with CodeNotFound unless p is an existing directory.
func (m *Mutator) requireDir(op, p string) error {
	ok, err := m.isDir(p)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(op, p)
	}
	return nil
}

// resolve returns a comparable form of p, absolute when the filesystem can
// expand paths.
func (m *Mutator) resolve(p string) string {
	if afs, ok := m.fs.(core.AbsFS); ok {
		if abs, err := afs.Abs(p); err == nil {
			return path.Clean(strings.ReplaceAll(abs, "\\", "/"))
		}
	}
	return path.Clean(p)
}

// checkDisjoint rejects a source and target that are the same directory or
// nested in one another. Recursing into either would never terminate or
// would destroy the source.
func (m *Mutator) checkDisjoint(op, src, dst string) error {
	a, b := m.resolve(src), m.resolve(dst)
	if a == b {
		return invalidArgument(op, "source and target are the same directory: %q", src)
	}
	if within(b, a) || within(a, b) {
		return invalidArgument(op, "%q and %q are nested in one another", src, dst)
	}
	return nil
}

func within(p, dir string) bool {
	if dir == "/" {
		return p != "/"
	}
	if dir == "." {
		return !strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "..")
	}
	return strings.HasPrefix(p, dir+"/")
}

// child joins a directory and one of its entry names without cleaning the
// directory part.
func child(dir, name string) string {
	switch dir {
	case "", ".":
		return name
	}
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
