package tree

import (
	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/internal/logging"
)

// Copy replicates the directory src at dst. Files are copied byte for byte
// and the source is left untouched. It fails with CodeNotFound unless src is
// a directory and with CodeAlreadyExists if dst exists.
func (m *Mutator) Copy(src, dst string) (err error) {
	defer m.track(logging.OpCopy, &err, "source", src, "target", dst)()

	if err := m.preflight("copy", src, dst); err != nil {
		return err
	}
	ok, err := m.exists(dst)
	if err != nil {
		return err
	}
	if ok {
		return alreadyExists("copy", dst)
	}
	return m.copyTree(src, dst, false)
}

// CopyForce is Copy onto a possibly existing dst. Conflicting leaves are
// overwritten, a file standing where a directory is needed is replaced and
// entries only present in dst are kept.
func (m *Mutator) CopyForce(src, dst string) (err error) {
	defer m.track(logging.OpCopy, &err, "source", src, "target", dst, "force", true)()

	if err := m.preflight("copy", src, dst); err != nil {
		return err
	}
	return m.copyTree(src, dst, true)
}

func (m *Mutator) preflight(op, src, dst string) error {
	if src == "" || dst == "" {
		return invalidArgument(op, "source and target are required")
	}
	if err := m.requireDir(op, src); err != nil {
		return err
	}
	return m.checkDisjoint(op, src, dst)
}

func (m *Mutator) copyTree(src, dst string, force bool) error {
	if err := m.ensureDir(dst, force); err != nil {
		return err
	}

	names, err := m.lister.List(src)
	if err != nil {
		return err
	}
	for _, name := range names {
		from, to := child(src, name), child(dst, name)
		dir, err := m.isDir(from)
		if err != nil {
			return err
		}
		if dir {
			if err := m.copyTree(from, to, force); err != nil {
				return err
			}
			continue
		}
		if err := m.copyFile(from, to, force); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mutator) copyFile(from, to string, force bool) error {
	if force {
		occupied, err := m.isDir(to)
		if err != nil {
			return err
		}
		if occupied {
			if err := m.deleteTree(to); err != nil {
				return err
			}
		}
	}

	data, err := m.files.ReadAll(from)
	if err != nil {
		return err
	}
	return m.files.WriteAll(to, data)
}

// ensureDir creates p if needed. With force a file at p is removed first.
func (m *Mutator) ensureDir(p string, force bool) error {
	err := m.mkdirs(p)
	if !force || errors.GetCode(err) != errors.CodeNotDirectory {
		return err
	}
	ok, fileErr := m.files.Exists(p)
	if fileErr != nil {
		return fileErr
	}
	if !ok {
		return err
	}
	if err := m.files.Delete(p); err != nil {
		return err
	}
	return m.mkdirs(p)
}
