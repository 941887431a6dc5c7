/*
Package cue loads tree literals written in CUE.

A CUE struct maps naturally onto a directory tree: nested structs are
directories and string (or bytes) fields are files holding that content.
CUE adds what plain YAML lacks for this job: comments, references between
fields and shared templates.

	base: {
	    "README.md": "# project"
	    LICENSE:     "MIT"
	}

	demo: base & {
	    src: "main.go": "package main"
	}

# Loading

The Loader reads sources through a fs/core.ReadFS, so trees can come from
the local disk or an in-memory filesystem:

	loader := cue.NewLoader(billy.NewLocal())
	node, err := loader.LoadTree(ctx, "trees.cue", "demo")
	if err != nil {
	    return err
	}
	err = mutator.Materialize("out", node)

LoadTreeBytes compiles source held in memory and DecodeTree converts a
cue.Value obtained elsewhere.

# Errors

Errors carry the codes of the errors package:

  - CodeCUELoadFailed: the source could not be read
  - CodeCUEBuildFailed: the source did not compile or evaluate
  - CodeCUEDecodeFailed: the value has no tree literal representation

Decode errors name the offending field in their "field" context entry.
*/
package cue
