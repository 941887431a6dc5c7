package tree

import (
	"fmt"
	"io/fs"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/core"
)

// Literal describes a directory structure to materialize. It is either a
// Leaf (file content) or a Node (a directory).
type Literal interface {
	literal()
}

// Leaf is the text content of a file.
type Leaf string

// Node maps entry names to their content.
type Node map[string]Literal

func (Leaf) literal() {}
func (Node) literal() {}

// Names returns the entry names of n in lexical order.
func (n Node) Names() []string {
	names := make([]string, 0, len(n))
	for name := range n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of leaves and nodes below n, recursively.
func (n Node) Count() int {
	count := 0
	for _, value := range n {
		count++
		if sub, ok := value.(Node); ok {
			count += sub.Count()
		}
	}
	return count
}

// Validate checks that every name is a single path segment and every value
// is a Leaf or a non-nil Node.
func (n Node) Validate() error {
	return n.validate("")
}

func (n Node) validate(prefix string) error {
	for _, name := range n.Names() {
		where := prefix + name
		if !validName(name) {
			return invalidLiteral(where, "invalid entry name %q", name)
		}
		switch value := n[name].(type) {
		case Leaf:
		case Node:
			if value == nil {
				return invalidLiteral(where, "nil node")
			}
			if err := value.validate(where + "/"); err != nil {
				return err
			}
		default:
			return invalidLiteral(where, "unsupported literal %T", value)
		}
	}
	return nil
}

// Paths returns the slash-separated relative path of every leaf below n in
// lexical order.
func (n Node) Paths() []string {
	var paths []string
	for _, name := range n.Names() {
		switch value := n[name].(type) {
		case Leaf:
			paths = append(paths, name)
		case Node:
			for _, sub := range value.Paths() {
				paths = append(paths, name+"/"+sub)
			}
		}
	}
	return paths
}

// Get returns the literal at the slash-separated relative path p.
func (n Node) Get(p string) (Literal, bool) {
	var current Literal = n
	for _, segment := range strings.Split(p, "/") {
		if segment == "" {
			continue
		}
		node, ok := current.(Node)
		if !ok {
			return nil, false
		}
		if current, ok = node[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// subtree returns the node at segments, creating missing nodes on the way.
func (n Node) subtree(segments []string) Node {
	current := n
	for _, segment := range segments {
		next, ok := current[segment].(Node)
		if !ok {
			next = Node{}
			current[segment] = next
		}
		current = next
	}
	return current
}

// FromMap converts nested Go maps into a Node. Values may be strings,
// byte slices, Leafs, Nodes or nested map[string]any and map[string]string
// values. Cycles and any other value type fail with CodeInvalidArgument.
func FromMap(m map[string]any) (Node, error) {
	return fromMap(m, "", map[uintptr]bool{})
}

func fromMap(m map[string]any, prefix string, ancestors map[uintptr]bool) (Node, error) {
	ptr := reflect.ValueOf(m).Pointer()
	if ancestors[ptr] {
		return nil, invalidMap(prefix, "cycle detected")
	}
	ancestors[ptr] = true
	defer delete(ancestors, ptr)

	node := make(Node, len(m))
	for name, raw := range m {
		where := prefix + name
		value, err := fromValue(raw, where, ancestors)
		if err != nil {
			return nil, err
		}
		node[name] = value
	}
	return node, nil
}

func fromValue(raw any, where string, ancestors map[uintptr]bool) (Literal, error) {
	switch value := raw.(type) {
	case string:
		return Leaf(value), nil
	case []byte:
		return Leaf(value), nil
	case Leaf:
		return value, nil
	case Node:
		converted := make(map[string]any, len(value))
		for k, v := range value {
			converted[k] = v
		}
		if value != nil {
			// Identity of the original map, not the copy, drives cycle detection.
			ptr := reflect.ValueOf(value).Pointer()
			if ancestors[ptr] {
				return nil, invalidMap(where, "cycle detected")
			}
			ancestors[ptr] = true
			defer delete(ancestors, ptr)
		}
		return fromMap(converted, where+"/", ancestors)
	case map[string]any:
		return fromMap(value, where+"/", ancestors)
	case map[string]string:
		node := make(Node, len(value))
		for k, v := range value {
			node[k] = Leaf(v)
		}
		return node, nil
	default:
		return nil, invalidMap(where, fmt.Sprintf("unsupported value type %T", raw))
	}
}

// ParseLiteral parses a YAML or JSON mapping into a Node. Scalars become
// leaves holding their literal text and mappings become nodes. Sequences
// and null values fail with CodeLiteralInvalid.
func ParseLiteral(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeLiteralInvalid, "failed to parse tree literal")
	}
	if doc.Kind == 0 {
		return Node{}, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.CodeLiteralInvalid, "tree literal must be a mapping at line %d", root.Line)
	}
	w := &yamlWalker{ancestors: map[*yaml.Node]bool{}}
	literal, err := w.walk(root, "")
	if err != nil {
		return nil, err
	}
	return literal.(Node), nil
}

// maxYAMLEntries bounds the entries a literal may expand to through aliases.
const maxYAMLEntries = 1 << 20

// yamlWalker converts a yaml.Node document into a literal. Anchors are
// registered before their children are parsed, so an alias can point back
// at one of its own ancestors; ancestors tracks the mappings on the current
// descent to reject those cycles.
type yamlWalker struct {
	ancestors map[*yaml.Node]bool
	entries   int
}

func (w *yamlWalker) walk(n *yaml.Node, where string) (Literal, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if w.entries++; w.entries > maxYAMLEntries {
		return nil, invalidLiteral(strings.TrimSuffix(where, "/"), "literal expands to more than %d entries", maxYAMLEntries)
	}

	switch n.Kind {
	case yaml.MappingNode:
		if w.ancestors[n] {
			return nil, invalidLiteral(strings.TrimSuffix(where, "/"), "cycle detected at line %d", n.Line)
		}
		w.ancestors[n] = true
		defer delete(w.ancestors, n)

		node := make(Node, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, invalidLiteral(where, "non-scalar key at line %d", key.Line)
			}
			value, err := w.walk(n.Content[i+1], where+key.Value+"/")
			if err != nil {
				return nil, err
			}
			node[key.Value] = value
		}
		return node, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, invalidLiteral(strings.TrimSuffix(where, "/"), "null value at line %d", n.Line)
		}
		return Leaf(n.Value), nil
	default:
		return nil, invalidLiteral(strings.TrimSuffix(where, "/"), "unsupported value at line %d", n.Line)
	}
}

// FromFS captures the tree rooted at root in fsys (typically an embed.FS)
// as a Node. Use "." for the whole filesystem.
//
// Example:
//
//	//go:embed templates
//	var templates embed.FS
//
//	node, err := tree.FromFS(templates, "templates")
func FromFS(fsys fs.FS, root string) (Node, error) {
	if root == "" {
		root = "."
	}
	node := Node{}
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			if !d.IsDir() {
				return &fs.PathError{Op: "walk", Path: p, Err: core.ErrNotDir}
			}
			return nil
		}

		rel := p
		if root != "." {
			rel = strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		}
		segments := strings.Split(rel, "/")
		parent := node.subtree(segments[:len(segments)-1])
		name := segments[len(segments)-1]

		if d.IsDir() {
			parent.subtree([]string{name})
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		parent[name] = Leaf(data)
		return nil
	})
	if err != nil {
		return nil, classify(err, "load", root)
	}
	return node, nil
}

func invalidLiteral(where, format string, args ...interface{}) error {
	return errors.WithContext(errors.Newf(errors.CodeLiteralInvalid, format, args...), "entry", where)
}

func invalidMap(where, message string) error {
	return errors.WithContext(errors.New(errors.CodeInvalidArgument, message), "entry", strings.TrimSuffix(where, "/"))
}
