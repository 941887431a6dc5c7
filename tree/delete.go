package tree

import (
	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/internal/logging"
)

// Delete removes the directory p and everything below it, children before
// parents. It fails with CodeNotFound unless p is an existing directory.
// A failure partway through leaves the remaining entries in place.
func (m *Mutator) Delete(p string) (err error) {
	defer m.track(logging.OpDelete, &err, "path", p)()

	if err := m.requireDir("delete", p); err != nil {
		return err
	}
	return m.deleteTree(p)
}

// DeleteForce is Delete for best-effort cleanup: a missing p is not an
// error. Every other failure is still reported.
func (m *Mutator) DeleteForce(p string) (err error) {
	defer m.track(logging.OpDelete, &err, "path", p, "force", true)()

	if err := m.requireDir("delete", p); err != nil {
		return ignore(err, errors.CodeNotFound)
	}
	return ignore(m.deleteTree(p), errors.CodeNotFound)
}

func (m *Mutator) deleteTree(p string) error {
	dirs, err := m.lister.Dirs(p)
	if err != nil {
		return err
	}
	for _, name := range dirs {
		if err := m.deleteTree(child(p, name)); err != nil {
			return err
		}
	}

	files, err := m.lister.Files(p)
	if err != nil {
		return err
	}
	for _, name := range files {
		if err := m.files.Delete(child(p, name)); err != nil {
			return err
		}
	}

	// Symlinks and special files are left once regular files are gone.
	others, err := m.leaves(p)
	if err != nil {
		return err
	}
	for _, name := range others {
		if err := m.fs.Remove(child(p, name)); err != nil {
			return classify(err, "delete", child(p, name))
		}
	}

	return classify(m.fs.Remove(p), "delete", p)
}

// deleteAny removes p whether it is a directory tree or a single file.
func (m *Mutator) deleteAny(p string) error {
	dir, err := m.isDir(p)
	if err != nil {
		return err
	}
	if dir {
		return m.deleteTree(p)
	}
	return m.files.Delete(p)
}
