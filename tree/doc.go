// Package tree implements recursive directory-tree mutations over a core.FS.
//
// The Mutator offers recursive create, delete, copy, rename, merge, conflict
// detection and materialization of tree literals. Every mutating operation
// comes in a strict form, which reports every violated precondition, and a
// Force form, which treats the expected best-effort conditions as success:
//
//	CreateForce  ignores targets that already exist
//	DeleteForce  ignores targets that are already gone
//	RenameForce  replaces whatever is at the target
//	CopyForce    overwrites conflicting leaves
//	MergeForce   ignores missing roots
//
// Permission and I/O failures are always reported, by strict and Force forms
// alike. Nothing is rolled back: a failure partway through leaves a partially
// mutated tree.
//
// The engine reaches leaf content through a FileStore and one-level listings
// through a Lister. Both default to implementations backed by the same
// core.FS and can be replaced with options:
//
//	m := tree.New(billy.NewMemory(), tree.WithLogger(logger))
//	if err := m.Materialize("demo", tree.Node{
//	    "README": tree.Leaf("hello"),
//	    "src":    tree.Node{"main.go": tree.Leaf("package main")},
//	}); err != nil {
//	    return err
//	}
//
// Tree literals can also be parsed from YAML or JSON with ParseLiteral,
// built from Go maps with FromMap, captured from an fs.FS with FromFS, or
// captured from the mutator's own filesystem with Snapshot.
package tree
