// Command fast runs recursive directory tree operations from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/xaviervia/fast/internal/cli"
)

// Set with -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	root := cli.NewRootCmd(Version, GitCommit, BuildTime)
	if err := cli.Execute(root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
