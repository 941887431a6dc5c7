package tree

import (
	"github.com/xaviervia/fast/internal/logging"
)

// Rename relocates the directory src to dst entry by entry and removes the
// emptied src. It fails with CodeNotFound unless src is a directory and
// with CodeAlreadyExists if anything exists at dst.
func (m *Mutator) Rename(src, dst string) (err error) {
	defer m.track(logging.OpRename, &err, "source", src, "target", dst)()

	if err := m.preflight("rename", src, dst); err != nil {
		return err
	}
	ok, err := m.exists(dst)
	if err != nil {
		return err
	}
	if ok {
		return alreadyExists("rename", dst)
	}
	return m.renameTree(src, dst)
}

// RenameForce is Rename onto a possibly occupied dst. Whatever exists at
// dst, a directory tree or a file, is deleted first.
func (m *Mutator) RenameForce(src, dst string) (err error) {
	defer m.track(logging.OpRename, &err, "source", src, "target", dst, "force", true)()

	if err := m.preflight("rename", src, dst); err != nil {
		return err
	}
	ok, err := m.exists(dst)
	if err != nil {
		return err
	}
	if ok {
		if err := m.deleteAny(dst); err != nil {
			return err
		}
	}
	return m.renameTree(src, dst)
}

// renameTree creates dst, moves every file of src into it with the file
// rename primitive, recurses for subdirectories and removes src last.
func (m *Mutator) renameTree(src, dst string) error {
	if err := m.mkdirs(dst); err != nil {
		return err
	}

	files, err := m.leaves(src)
	if err != nil {
		return err
	}
	for _, name := range files {
		from, to := child(src, name), child(dst, name)
		if err := m.fs.Rename(from, to); err != nil {
			return classify(err, "rename", from)
		}
	}

	dirs, err := m.lister.Dirs(src)
	if err != nil {
		return err
	}
	for _, name := range dirs {
		if err := m.renameTree(child(src, name), child(dst, name)); err != nil {
			return err
		}
	}

	return classify(m.fs.Remove(src), "rename", src)
}
