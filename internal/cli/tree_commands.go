package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xaviervia/fast"
)

const forceFlag = "force"

func pathArgs(args []string) []fast.PathLike {
	paths := make([]fast.PathLike, len(args))
	for i, a := range args {
		paths[i] = fast.Text(a)
	}
	return paths
}

func addForceFlag(cmd *cobra.Command, usage string) *bool {
	return cmd.Flags().BoolP(forceFlag, "f", false, usage)
}

func newMkdirCmd(s *session) *cobra.Command {
	var force *bool
	cmd := &cobra.Command{
		Use:   "mkdir PATH...",
		Short: "Create directories and their missing parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create := s.dir().Create
			if *force {
				create = s.dir().CreateForce
			}
			_, err := create(pathArgs(args)...)
			return err
		},
	}
	force = addForceFlag(cmd, "do not fail on existing directories")
	return cmd
}

func newRemoveCmd(s *session) *cobra.Command {
	var force *bool
	cmd := &cobra.Command{
		Use:   "rm PATH...",
		Short: "Delete directory trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remove := s.dir().Delete
			if *force {
				remove = s.dir().DeleteForce
			}
			_, err := remove(pathArgs(args)...)
			return err
		},
	}
	force = addForceFlag(cmd, "skip directories that do not exist")
	return cmd
}

func newCopyCmd(s *session) *cobra.Command {
	var force *bool
	cmd := &cobra.Command{
		Use:   "cp SOURCE TARGET",
		Short: "Copy a directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyTree := s.dir().Copy
			if *force {
				copyTree = s.dir().CopyForce
			}
			_, err := copyTree(pathArgs(args)...)
			return err
		},
	}
	force = addForceFlag(cmd, "copy into an existing target, overwriting files")
	return cmd
}

func newMoveCmd(s *session) *cobra.Command {
	var force *bool
	cmd := &cobra.Command{
		Use:     "mv SOURCE TARGET",
		Aliases: []string{"rename"},
		Short:   "Move a directory tree",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			move := s.dir().Rename
			if *force {
				move = s.dir().RenameForce
			}
			_, err := move(pathArgs(args)...)
			return err
		},
	}
	force = addForceFlag(cmd, "replace whatever exists at the target")
	return cmd
}

func newMergeCmd(s *session) *cobra.Command {
	var force *bool
	cmd := &cobra.Command{
		Use:   "merge CURRENT TARGET",
		Short: "Move the content of TARGET into CURRENT and delete TARGET",
		Long: `merge moves every entry of TARGET into CURRENT and deletes TARGET.
Subdirectories present in both are merged recursively. When a file name exists
in both, the file of CURRENT is kept. A name that is a directory on one side
only fails the merge before anything moves. Run "fast conflicts" first to find
such names.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			merge := s.dir().Merge
			if *force {
				merge = s.dir().MergeForce
			}
			_, err := merge(pathArgs(args)...)
			return err
		},
	}
	force = addForceFlag(cmd, "do not fail when a directory is missing")
	return cmd
}

func newConflictsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts CURRENT TARGET",
		Short: "Report whether merging TARGET into CURRENT would drop files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, err := s.dir().ConflictsWith(pathArgs(args)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), conflicts)
			return nil
		},
	}
}
