// Package fast is a convenience layer for scripting with files and
// directories.
//
// A Dir handle lists, creates, deletes, copies, renames and merges whole
// directory trees; a File handle reads, writes, appends and touches single
// files. Handles may carry a path of their own, used whenever an operation
// is called without arguments:
//
//	d, err := fast.EnsureDir(fast.Text("build"))
//	if err != nil {
//	    return err
//	}
//	if _, err := d.Put(fast.Text("config"), tree.Node{
//	    "app.yaml": tree.Leaf("name: demo\n"),
//	}); err != nil {
//	    return err
//	}
//	if _, err := d.Copy(fast.Text("build-backup")); err != nil {
//	    return err
//	}
//
// Paths are given as PathLike values: Text, Label, or another handle. Every
// operation has a strict form and, where it makes sense, a Force form that
// tolerates targets that already exist or are already gone.
//
// Handles use the host filesystem by default. WithFilesystem swaps in any
// core.FS, such as billy.NewMemory() for tests.
package fast
