package tree

import (
	"strings"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/internal/logging"
)

// Materialize builds node under root. Leaves become files holding their
// text and nodes become directories, created when missing. Existing files
// named by a leaf are overwritten; other existing entries are kept. An
// empty root means the current directory.
func (m *Mutator) Materialize(root string, node Node) (err error) {
	if root == "" {
		root = "."
	}
	defer m.track(logging.OpMaterialize, &err, "root", root, "entries", node.Count())()

	if err := node.Validate(); err != nil {
		return err
	}
	return m.materialize(root, node)
}

func (m *Mutator) materialize(root string, node Node) error {
	if err := ignore(m.mkdirs(root), errors.CodeAlreadyExists); err != nil {
		return err
	}

	for _, name := range node.Names() {
		p := child(root, name)
		switch value := node[name].(type) {
		case Leaf:
			if err := m.files.WriteAll(p, []byte(value)); err != nil {
				return err
			}
		case Node:
			if err := m.materialize(p, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// validName rejects entry names that cannot appear in a single directory.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, "/\x00")
}
