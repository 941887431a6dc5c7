// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps billy's osfs and reaches the host disk; MemoryFS wraps
// memfs and keeps the whole tree in memory, which makes it the provider of
// choice for tests.
//
// Both providers resolve relative paths against a root directory: the
// process working directory for NewLocal, "/" for NewMemory. WithRoot
// overrides it:
//
//	local := billy.NewLocal(billy.WithRoot("/srv/site"))
//	err := local.WriteFile("index.html", page, 0o644) // writes /srv/site/index.html
//
// The underlying billy.Filesystem stays reachable through Unwrap.
//
// # Thread Safety
//
// Providers are safe for concurrent use by multiple goroutines. The tree
// engine built on them is not.
package billy
