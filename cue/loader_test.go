package cue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/billy"
	"github.com/xaviervia/fast/tree"
)

const scenario = `
demo: {
	Superfile: "With some content"
	subdir: {
		"deep.txt": "In the structure."
	}
}
`

func TestLoadFile(t *testing.T) {
	t.Run("loads a file from memory", func(t *testing.T) {
		mfs := billy.NewMemory()
		require.NoError(t, mfs.WriteFile("trees.cue", []byte(scenario), 0o644))

		val, err := NewLoader(mfs).LoadFile(context.Background(), "trees.cue")
		require.NoError(t, err)

		got, err := val.LookupPath(cuePath("demo.Superfile")).String()
		require.NoError(t, err)
		assert.Equal(t, "With some content", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(billy.NewMemory()).LoadFile(context.Background(), "missing.cue")
		require.Error(t, err)
		assert.Equal(t, errors.CodeCUELoadFailed, errors.GetCode(err))
	})

	t.Run("syntax error", func(t *testing.T) {
		mfs := billy.NewMemory()
		require.NoError(t, mfs.WriteFile("broken.cue", []byte("demo: {"), 0o644))

		_, err := NewLoader(mfs).LoadFile(context.Background(), "broken.cue")
		require.Error(t, err)
		assert.Equal(t, errors.CodeCUEBuildFailed, errors.GetCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewLoader(billy.NewMemory()).LoadFile(ctx, "trees.cue")
		require.Error(t, err)
		assert.Equal(t, errors.CodeCUELoadFailed, errors.GetCode(err))
	})
}

func TestLoadTree(t *testing.T) {
	want := tree.Node{
		"Superfile": tree.Leaf("With some content"),
		"subdir": tree.Node{
			"deep.txt": tree.Leaf("In the structure."),
		},
	}

	t.Run("selects a field", func(t *testing.T) {
		mfs := billy.NewMemory()
		require.NoError(t, mfs.WriteFile("trees.cue", []byte(scenario), 0o644))

		node, err := NewLoader(mfs).LoadTree(context.Background(), "trees.cue", "demo")
		require.NoError(t, err)
		assert.Equal(t, want, node)
	})

	t.Run("whole file", func(t *testing.T) {
		mfs := billy.NewMemory()
		require.NoError(t, mfs.WriteFile("trees.cue", []byte(scenario), 0o644))

		node, err := NewLoader(mfs).LoadTree(context.Background(), "trees.cue", "")
		require.NoError(t, err)
		assert.Equal(t, tree.Node{"demo": want}, node)
	})

	t.Run("missing field", func(t *testing.T) {
		mfs := billy.NewMemory()
		require.NoError(t, mfs.WriteFile("trees.cue", []byte(scenario), 0o644))

		_, err := NewLoader(mfs).LoadTree(context.Background(), "trees.cue", "other")
		require.Error(t, err)
		assert.Equal(t, errors.CodeCUEDecodeFailed, errors.GetCode(err))
	})

	t.Run("materializes", func(t *testing.T) {
		mfs := billy.NewMemory()
		require.NoError(t, mfs.WriteFile("trees.cue", []byte(scenario), 0o644))

		node, err := NewLoader(mfs).LoadTree(context.Background(), "trees.cue", "demo")
		require.NoError(t, err)

		m := tree.New(mfs)
		require.NoError(t, m.Materialize("demo", node))

		data, err := mfs.ReadFile("demo/subdir/deep.txt")
		require.NoError(t, err)
		assert.Equal(t, "In the structure.", string(data))
	})
}

func TestLoadTreeBytes(t *testing.T) {
	src := []byte(`
base: {
	"README.md": "# project"
}
demo: base & {
	src: "main.go": "package main"
}
`)

	node, err := NewLoader(billy.NewMemory()).LoadTreeBytes(context.Background(), src, "inline.cue", "demo")
	require.NoError(t, err)
	assert.Equal(t, tree.Node{
		"README.md": tree.Leaf("# project"),
		"src":       tree.Node{"main.go": tree.Leaf("package main")},
	}, node)
}

func TestLoadBytesConflict(t *testing.T) {
	_, err := NewLoader(billy.NewMemory()).LoadBytes(context.Background(), []byte(`a: "x"
a: "y"`), "conflict.cue")
	require.Error(t, err)
	assert.Equal(t, errors.CodeCUEBuildFailed, errors.GetCode(err))
}
