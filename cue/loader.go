package cue

import (
	"context"
	"fmt"
	"path"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/xaviervia/fast/fs/core"
	"github.com/xaviervia/fast/tree"
)

// Loader reads CUE sources from a filesystem and turns them into tree
// literals. It keeps one CUE context for every compilation it performs.
type Loader struct {
	fs     core.ReadFS
	cueCtx *cue.Context
}

// NewLoader creates a new CUE loader with the given filesystem.
func NewLoader(filesystem core.ReadFS) *Loader {
	return &Loader{
		fs:     filesystem,
		cueCtx: cuecontext.New(),
	}
}

// Context returns the underlying CUE context.
func (l *Loader) Context() *cue.Context {
	return l.cueCtx
}

// LoadFile loads a single CUE file from the filesystem.
//
// Returns CodeCUELoadFailed on file I/O errors.
// Returns CodeCUEBuildFailed on CUE compilation errors.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, wrapLoadErrorWithContext(err, "context cancelled", makeContext("file_path", filePath))
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return cue.Value{}, wrapLoadErrorWithContext(
			err,
			"failed to read CUE file",
			makeContext("file_path", filePath),
		)
	}

	// The overlay keeps load.Instances away from the host filesystem.
	absPath := path.Join("/", filePath)
	config := &load.Config{
		Dir:     "/",
		Overlay: map[string]load.Source{absPath: load.FromBytes(data)},
	}

	insts := load.Instances([]string{absPath}, config)
	if len(insts) == 0 {
		return cue.Value{}, wrapLoadErrorWithContext(
			fmt.Errorf("no instances loaded"),
			"failed to load CUE file",
			makeContext("file_path", filePath),
		)
	}
	if err := insts[0].Err; err != nil {
		return cue.Value{}, wrapBuildErrorWithContext(
			err,
			"failed to load CUE file",
			makeContext("file_path", filePath),
		)
	}

	val := l.cueCtx.BuildInstance(insts[0])
	if err := val.Validate(); err != nil {
		return cue.Value{}, wrapBuildErrorWithContext(
			err,
			"failed to build CUE file",
			makeContext("file_path", filePath),
		)
	}

	return val, nil
}

// LoadBytes compiles CUE source held in memory. The filename is only used
// in error positions.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, wrapLoadErrorWithContext(err, "context cancelled", makeContext("filename", filename))
	}

	val := l.cueCtx.CompileBytes(source, cue.Filename(filename))
	if err := val.Validate(); err != nil {
		return cue.Value{}, wrapBuildErrorWithContext(
			err,
			"failed to compile CUE source",
			makeContext("filename", filename, "source_size", len(source)),
		)
	}

	return val, nil
}

// LoadTree loads a CUE file and decodes it into a tree literal. When field
// is not empty only the value at that CUE path is decoded, so a single file
// can describe several trees:
//
//	demo: {
//	    README: "hello"
//	    src: "main.go": "package main"
//	}
//
//	node, err := loader.LoadTree(ctx, "trees.cue", "demo")
func (l *Loader) LoadTree(ctx context.Context, filePath, field string) (tree.Node, error) {
	val, err := l.LoadFile(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return decodeField(ctx, val, field)
}

// LoadTreeBytes is LoadTree for CUE source held in memory.
func (l *Loader) LoadTreeBytes(ctx context.Context, source []byte, filename, field string) (tree.Node, error) {
	val, err := l.LoadBytes(ctx, source, filename)
	if err != nil {
		return nil, err
	}
	return decodeField(ctx, val, field)
}

func decodeField(ctx context.Context, val cue.Value, field string) (tree.Node, error) {
	if field != "" {
		val = val.LookupPath(cue.ParsePath(field))
		if !val.Exists() {
			return nil, decodeError(field, "field %q not found", field)
		}
	}
	return DecodeTree(ctx, val)
}
