package tree

import (
	"io/fs"
	"path"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/core"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// NewFileStore returns a FileStore backed by filesystem.
func NewFileStore(filesystem core.FS) FileStore {
	return &fsStore{fs: filesystem}
}

// NewLister returns a Lister backed by filesystem.
func NewLister(filesystem core.FS) Lister {
	return &fsLister{fs: filesystem}
}

type fsStore struct {
	fs core.FS
}

func (s *fsStore) Exists(p string) (bool, error) {
	ok, err := s.fs.Exists(p)
	if err != nil || !ok {
		return false, classify(err, "exists", p)
	}
	info, err := s.fs.Stat(p)
	if err != nil {
		return false, classify(err, "exists", p)
	}
	return !info.IsDir(), nil
}

func (s *fsStore) ReadAll(p string) ([]byte, error) {
	data, err := s.fs.ReadFile(p)
	if err != nil {
		return nil, classify(err, "read", p)
	}
	return data, nil
}

func (s *fsStore) WriteAll(p string, data []byte) error {
	if err := s.ensureParent(p); err != nil {
		return err
	}
	return classify(s.fs.WriteFile(p, data, filePerm), "write", p)
}

func (s *fsStore) Append(p string, data []byte) error {
	if err := s.ensureParent(p); err != nil {
		return err
	}
	return classify(s.fs.AppendFile(p, data, filePerm), "append", p)
}

func (s *fsStore) Delete(p string) error {
	info, err := s.fs.Stat(p)
	if err != nil {
		return classify(err, "delete", p)
	}
	if info.IsDir() {
		return errors.WithContextMap(
			errors.Newf(errors.CodeInvalidArgument, "%q is a directory", p),
			makeContext("delete", p),
		)
	}
	return classify(s.fs.Remove(p), "delete", p)
}

func (s *fsStore) Touch(p string) error {
	ok, err := s.fs.Exists(p)
	if err != nil {
		return classify(err, "touch", p)
	}
	if ok {
		return nil
	}
	return s.Append(p, nil)
}

func (s *fsStore) ensureParent(p string) error {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return nil
	}
	return classify(s.fs.MkdirAll(dir, dirPerm), "mkdir", dir)
}

type fsLister struct {
	fs core.FS
}

func (l *fsLister) List(p string) ([]string, error) {
	return l.names(p, func(fs.DirEntry) bool { return true })
}

func (l *fsLister) Files(p string) ([]string, error) {
	return l.names(p, func(e fs.DirEntry) bool { return e.Type().IsRegular() })
}

func (l *fsLister) Dirs(p string) ([]string, error) {
	return l.names(p, fs.DirEntry.IsDir)
}

func (l *fsLister) names(p string, keep func(fs.DirEntry) bool) ([]string, error) {
	entries, err := l.fs.ReadDir(p)
	if err != nil {
		return nil, classify(err, "list", p)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if keep(entry) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
