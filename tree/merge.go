package tree

import (
	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/internal/logging"
)

// Merge moves the content of target into current and deletes target.
//
// Entries missing from current are relocated. Directories present in both
// are merged recursively. When a file name exists on both sides the file
// of current is kept and the file of target is dropped with the rest of
// target. Use ConflictsWith beforehand to detect such collisions.
//
// Before touching anything it fails with CodeNotFound unless both roots
// are existing directories, and with CodeNotDirectory when a name is a
// directory on one side and not on the other.
func (m *Mutator) Merge(current, target string) (err error) {
	defer m.track(logging.OpMerge, &err, "current", current, "target", target)()

	return m.merge(current, target)
}

// MergeForce is Merge where a missing root is not an error.
func (m *Mutator) MergeForce(current, target string) (err error) {
	defer m.track(logging.OpMerge, &err, "current", current, "target", target, "force", true)()

	return ignore(m.merge(current, target), errors.CodeNotFound)
}

func (m *Mutator) merge(current, target string) error {
	if current == "" || target == "" {
		return invalidArgument("merge", "current and target are required")
	}
	if err := m.requireDir("merge", current); err != nil {
		return err
	}
	if err := m.requireDir("merge", target); err != nil {
		return err
	}
	if err := m.checkDisjoint("merge", current, target); err != nil {
		return err
	}
	p, err := m.clash(current, target)
	if err != nil {
		return err
	}
	if p != "" {
		return errors.WithContextMap(
			errors.Newf(errors.CodeNotDirectory, "%q is a directory in only one of the merged trees", p),
			makeContext("merge", p),
		)
	}
	return m.mergeTree(current, target)
}

func (m *Mutator) mergeTree(current, target string) error {
	names, err := m.lister.List(target)
	if err != nil {
		return err
	}

	for _, name := range names {
		from, into := child(target, name), child(current, name)
		fromDir, err := m.isDir(from)
		if err != nil {
			return err
		}
		taken, err := m.exists(into)
		if err != nil {
			return err
		}

		switch {
		case !taken && fromDir:
			err = m.renameTree(from, into)
		case !taken:
			err = classify(m.fs.Rename(from, into), "merge", from)
		case fromDir:
			intoDir, dirErr := m.isDir(into)
			if dirErr != nil {
				return dirErr
			}
			if intoDir {
				err = m.mergeTree(into, from)
			}
		}
		if err != nil {
			return err
		}
	}

	return m.deleteTree(target)
}
