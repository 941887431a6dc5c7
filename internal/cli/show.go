package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xaviervia/fast"
	"github.com/xaviervia/fast/tree"
)

func newTreeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [DIR]",
		Short: "Print a directory tree as a YAML literal",
		Long: `tree prints DIR as a YAML literal that "fast build" accepts, so a tree can
be captured and recreated elsewhere.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			node, err := tree.New(s.fs, tree.WithLogger(s.log)).Snapshot(root)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(node); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newCatCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE",
		Short: "Print the content of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := s.file().Read(fast.Text(args[0]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newTouchCmd(s *session) *cobra.Command {
	var appendText string
	cmd := &cobra.Command{
		Use:   "touch FILE...",
		Short: "Create files and their parent directories, keeping existing content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				f := s.file()
				if _, err := f.Touch(fast.Text(p)); err != nil {
					return err
				}
				if appendText == "" {
					continue
				}
				if _, err := f.Append(appendText); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&appendText, "append", "", "text to append to each file")
	return cmd
}
