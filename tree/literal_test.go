package tree

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
)

func TestFromMap(t *testing.T) {
	got, err := FromMap(map[string]any{
		"demo": map[string]any{
			"Superfile": "With some content",
			"subdir": map[string]string{
				"deep.txt": "In the structure.",
			},
			"raw":  []byte("bytes"),
			"leaf": Leaf("leaf"),
			"node": Node{"n": Leaf("n")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, Node{
		"demo": Node{
			"Superfile": Leaf("With some content"),
			"subdir":    Node{"deep.txt": Leaf("In the structure.")},
			"raw":       Leaf("bytes"),
			"leaf":      Leaf("leaf"),
			"node":      Node{"n": Leaf("n")},
		},
	}, got)
}

func TestFromMap_RejectsCycles(t *testing.T) {
	self := map[string]any{"name": "x"}
	self["again"] = self
	_, err := FromMap(self)
	assertCode(t, err, errors.CodeInvalidArgument)

	inner := map[string]any{}
	outer := map[string]any{"inner": inner}
	inner["outer"] = outer
	_, err = FromMap(outer)
	assertCode(t, err, errors.CodeInvalidArgument)

	node := Node{}
	node["loop"] = node
	_, err = FromMap(map[string]any{"n": node})
	assertCode(t, err, errors.CodeInvalidArgument)
}

func TestFromMap_SharedSubtreeIsNotACycle(t *testing.T) {
	shared := map[string]any{"f": "x"}
	got, err := FromMap(map[string]any{"a": shared, "b": shared})
	require.NoError(t, err)
	assert.Equal(t, Node{"a": Node{"f": Leaf("x")}, "b": Node{"f": Leaf("x")}}, got)
}

func TestFromMap_RejectsUnsupportedValues(t *testing.T) {
	for name, value := range map[string]any{
		"int":   42,
		"nil":   nil,
		"slice": []string{"a"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromMap(map[string]any{"dir": map[string]any{"bad": value}})
			assertCode(t, err, errors.CodeInvalidArgument)
			ctx := errorContext(t, err)
			assert.Equal(t, "dir/bad", ctx["entry"])
		})
	}
}

func TestParseLiteral(t *testing.T) {
	want := Node{
		"demo": Node{
			"Superfile": Leaf("With some content"),
			"subdir":    Node{"deep.txt": Leaf("In the structure.")},
			"count":     Leaf("3"),
			"empty":     Node{},
		},
	}

	tests := map[string]string{
		"yaml": `
demo:
  Superfile: With some content
  subdir:
    deep.txt: In the structure.
  count: 3
  empty: {}
`,
		"json": `{"demo": {"Superfile": "With some content", "subdir": {"deep.txt": "In the structure."}, "count": 3, "empty": {}}}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLiteral([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseLiteral_Anchors(t *testing.T) {
	got, err := ParseLiteral([]byte(`
base: &base
  f: shared
copy: *base
`))
	require.NoError(t, err)
	assert.Equal(t, Node{"base": Node{"f": Leaf("shared")}, "copy": Node{"f": Leaf("shared")}}, got)
}

func TestParseLiteral_RecursiveAlias(t *testing.T) {
	tests := map[string]struct {
		input string
		entry string
	}{
		"self":   {input: "a: &x\n  b: *x\n", entry: "a/b"},
		"nested": {input: "a: &x\n  b:\n    c: *x\n", entry: "a/b/c"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLiteral([]byte(tt.input))
			assertCode(t, err, errors.CodeLiteralInvalid)
			assert.Equal(t, tt.entry, errorContext(t, err)["entry"])
		})
	}
}

func TestParseLiteral_AliasExpansionIsBounded(t *testing.T) {
	// Each level holds ten aliases of the previous one: 10^8 entries.
	var b strings.Builder
	for level := 0; level < 8; level++ {
		fields := make([]string, 10)
		for k := range fields {
			value := "v"
			if level > 0 {
				value = fmt.Sprintf("*l%d", level-1)
			}
			fields[k] = fmt.Sprintf("k%d: %s", k, value)
		}
		fmt.Fprintf(&b, "l%d: &l%d {%s}\n", level, level, strings.Join(fields, ", "))
	}

	_, err := ParseLiteral([]byte(b.String()))
	assertCode(t, err, errors.CodeLiteralInvalid)
}

func TestParseLiteral_Empty(t *testing.T) {
	got, err := ParseLiteral(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseLiteral_Invalid(t *testing.T) {
	for name, input := range map[string]string{
		"sequence root":  "- a\n- b\n",
		"scalar root":    "hello",
		"null value":     "a:\n  b:\n",
		"sequence value": "a: [1, 2]",
		"malformed":      "a: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLiteral([]byte(input))
			assertCode(t, err, errors.CodeLiteralInvalid)
		})
	}
}

func TestFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/README":      {Data: []byte("hello")},
		"templates/src/main.go": {Data: []byte("package main")},
		"templates/empty":       {Mode: fs.ModeDir | 0o755},
		"other/ignored.txt":     {Data: []byte("x")},
	}

	got, err := FromFS(fsys, "templates")
	require.NoError(t, err)
	assert.Equal(t, Node{
		"README": Leaf("hello"),
		"src":    Node{"main.go": Leaf("package main")},
		"empty":  Node{},
	}, got)

	all, err := FromFS(fsys, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"other/ignored.txt", "templates/README", "templates/src/main.go"}, all.Paths())
}

func TestFromFS_Errors(t *testing.T) {
	fsys := fstest.MapFS{"file": {Data: []byte("x")}}

	_, err := FromFS(fsys, "missing")
	assertCode(t, err, errors.CodeNotFound)
	_, err = FromFS(fsys, "file")
	assertCode(t, err, errors.CodeNotDirectory)
}

func TestNodeHelpers(t *testing.T) {
	node := sampleTree()

	assert.Equal(t, []string{"a.txt", "empty", "sub"}, node.Names())
	assert.Equal(t, 6, node.Count())
	assert.Equal(t, []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"}, node.Paths())

	leaf, ok := node.Get("sub/deep/c.txt")
	require.True(t, ok)
	assert.Equal(t, Leaf("gamma"), leaf)

	_, ok = node.Get("a.txt/below")
	assert.False(t, ok)
	_, ok = node.Get("nope")
	assert.False(t, ok)
}

func errorContext(t *testing.T, err error) map[string]interface{} {
	t.Helper()
	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	return platformErr.Context()
}
