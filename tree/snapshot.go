package tree

import (
	"io/fs"
	"path"
	"strings"

	"github.com/xaviervia/fast/internal/logging"
)

// Snapshot captures the directory root and everything below it as a Node,
// reading every file's content. It is the inverse of Materialize.
func (m *Mutator) Snapshot(root string) (node Node, err error) {
	defer m.track(logging.OpSnapshot, &err, "root", root)()

	if root == "" {
		root = "."
	}
	if err := m.requireDir("snapshot", root); err != nil {
		return nil, err
	}

	base := path.Clean(root)
	node = Node{}
	err = m.fs.Walk(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return classify(walkErr, "snapshot", p)
		}
		if p == base {
			return nil
		}

		var rel string
		switch base {
		case ".":
			rel = p
		case "/":
			rel = strings.TrimPrefix(p, "/")
		default:
			rel = strings.TrimPrefix(p, base+"/")
		}
		segments := strings.Split(rel, "/")
		parent := node.subtree(segments[:len(segments)-1])
		name := segments[len(segments)-1]

		if d.IsDir() {
			parent[name] = Node{}
			return nil
		}
		data, err := m.files.ReadAll(p)
		if err != nil {
			return err
		}
		parent[name] = Leaf(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}
