// Package core defines the host filesystem contract the tree engine runs on.
//
// The contract is deliberately small: the engine only needs to stat, list,
// read, write and append files, create and remove single directories and
// rename leaves. Everything recursive is built on top of these primitives by
// the tree package, so any provider implementing FS gets recursive copy,
// rename, merge and delete for free.
//
// # Interface Hierarchy
//
// FS is composed of four sub-interfaces:
//
//   - ReadFS: Stat, ReadDir, ReadFile, Exists
//   - WriteFS: WriteFile, AppendFile, Mkdir, MkdirAll
//   - ManageFS: Remove, Rename
//   - WalkFS: Walk
//
// Optional capabilities are discovered with type assertions:
//
//   - AbsFS: absolute path expansion
//
// # Usage Example
//
//	func Touch(filesystem core.FS, name string) error {
//	    return filesystem.AppendFile(name, nil, 0o644)
//	}
//
// # Provider Implementations
//
// Concrete providers live in github.com/xaviervia/fast/fs/billy:
//
//   - billy.NewLocal: the host disk, relative paths resolved against a root
//   - billy.NewMemory: an in-memory tree, used throughout the tests
package core
