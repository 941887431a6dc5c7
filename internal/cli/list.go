package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/xaviervia/fast"
	"github.com/xaviervia/fast/errors"
)

type listOptions struct {
	files   bool
	dirs    bool
	ext     string
	glob    string
	match   string
	strip   bool
	symbols bool
}

func newListCmd(s *session) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List the entries of a directory",
		Long: `ls prints one entry name per line, in lexical order. Filters apply in the
order --ext, --glob, --match, then --strip removes the extensions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			names, err := list(s.dir(), opts, args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.files, "files", false, "list files only")
	flags.BoolVar(&opts.dirs, "dirs", false, "list directories only")
	flags.StringVar(&opts.ext, "ext", "", "keep names ending in this suffix, e.g. .go")
	flags.StringVar(&opts.glob, "glob", "", "keep names matching this glob pattern")
	flags.StringVar(&opts.match, "match", "", "keep names matching this regular expression")
	flags.BoolVar(&opts.strip, "strip", false, "strip the last extension from each name")
	flags.BoolVar(&opts.symbols, "symbols", false, "print extensionless names as :symbols")
	cmd.MarkFlagsMutuallyExclusive("files", "dirs")

	return cmd
}

func list(d *fast.Dir, opts *listOptions, p string) ([]string, error) {
	lister := d.List
	switch {
	case opts.files:
		lister = d.Files
	case opts.dirs:
		lister = d.Dirs
	}
	if _, err := lister(fast.Text(p)); err != nil {
		return nil, err
	}

	entries := d.Filter()
	if opts.ext != "" {
		entries = entries.Extension(opts.ext)
	}
	if opts.glob != "" {
		var err error
		if entries, err = entries.Glob(opts.glob); err != nil {
			return nil, err
		}
	}
	if opts.match != "" {
		re, err := regexp.Compile(opts.match)
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidArgument, "invalid --match expression"),
				"pattern", opts.match,
			)
		}
		entries = entries.Match(re)
	}
	if opts.strip {
		entries = entries.StripExtension()
	}

	if !opts.symbols {
		return entries, nil
	}
	symbols := entries.Symbols()
	names := make([]string, len(symbols))
	for i, sym := range symbols {
		names[i] = ":" + sym.String()
	}
	return names, nil
}
