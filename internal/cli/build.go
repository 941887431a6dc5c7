package cli

import (
	"path"

	"github.com/spf13/cobra"

	"github.com/xaviervia/fast"
	"github.com/xaviervia/fast/cue"
	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/tree"
)

func newBuildCmd(s *session) *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "build LITERAL TARGET",
		Short: "Create a directory tree from a YAML, JSON or CUE literal",
		Long: `build reads a tree literal and materializes it under TARGET. Mappings (or
CUE structs) become directories and strings become files with that content.
Files ending in .cue are evaluated as CUE; anything else is parsed as YAML,
which includes JSON. Existing files at the same paths are overwritten.`,
		Example: `  fast build layout.yaml out
  fast build trees.cue out --field demo`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := loadLiteral(cmd, s, args[0], field)
			if err != nil {
				return err
			}
			_, err = fast.DirAt(args[1], s.options()...).Build(node)
			return err
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "build only this entry: a CUE path for .cue files, a slash-separated path otherwise")
	return cmd
}

func loadLiteral(cmd *cobra.Command, s *session, file, field string) (tree.Node, error) {
	if path.Ext(file) == ".cue" {
		return cue.NewLoader(s.fs).LoadTree(cmd.Context(), file, field)
	}

	data, err := s.file().Read(fast.Text(file))
	if err != nil {
		return nil, err
	}
	node, err := tree.ParseLiteral([]byte(data))
	if err != nil {
		return nil, errors.WithContext(err, "file", file)
	}
	if field == "" {
		return node, nil
	}

	sub, ok := node.Get(field)
	if !ok {
		return nil, errors.WithContextMap(
			errors.Newf(errors.CodeNotFound, "field %q not found", field),
			map[string]interface{}{"file": file},
		)
	}
	subNode, ok := sub.(tree.Node)
	if !ok {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeLiteralInvalid, "field %q is a file, not a tree", field),
			"file", file,
		)
	}
	return subNode, nil
}
