// Package cli implements the fast command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xaviervia/fast"
	"github.com/xaviervia/fast/fs/billy"
	"github.com/xaviervia/fast/fs/core"
	"github.com/xaviervia/fast/internal/logging"
)

const (
	rootFlag     = "root"
	logLevelFlag = "log-level"
	logJSONFlag  = "log-json"

	rootEnv     = "FAST_ROOT"
	logLevelEnv = "FAST_LOG_LEVEL"
)

// session holds what every command needs once flags are resolved.
type session struct {
	fs  core.FS
	log *logging.Logger
}

func (s *session) options() []fast.Option {
	return []fast.Option{fast.WithFilesystem(s.fs), fast.WithLogger(s.log.Slog())}
}

func (s *session) dir() *fast.Dir {
	return fast.NewDir(s.options()...)
}

func (s *session) file() *fast.File {
	return fast.NewFile(s.options()...)
}

// NewRootCmd creates the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:   "fast",
		Short: "Recursive directory tree operations",
		Long: `fast creates, deletes, copies, renames and merges whole directory trees,
and builds trees from YAML, JSON or CUE literals.

Relative paths resolve against --root, which defaults to $FAST_ROOT or the
working directory. A .env file in the working directory is loaded first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
	}
	cmd.Version = fmt.Sprintf("%s (built on %s from %s)", version, date, commit)

	flags := cmd.PersistentFlags()
	flags.String(rootFlag, "", "directory relative paths resolve against (env "+rootEnv+")")
	flags.String(logLevelFlag, "", "log level: debug, info, warn or error (env "+logLevelEnv+")")
	flags.Bool(logJSONFlag, false, "write logs as JSON")

	cmd.AddCommand(
		newListCmd(s),
		newMkdirCmd(s),
		newRemoveCmd(s),
		newCopyCmd(s),
		newMoveCmd(s),
		newMergeCmd(s),
		newConflictsCmd(s),
		newBuildCmd(s),
		newTreeCmd(s),
		newCatCmd(s),
		newTouchCmd(s),
		newVersionCmd(version, commit, date),
	)

	return cmd
}

// Execute runs the provided root command.
func Execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("fast: %w", err)
	}
	return nil
}

func (s *session) setup(cmd *cobra.Command) error {
	// A missing .env file is the common case.
	envErr := godotenv.Load()

	level, err := logging.ParseLogLevel(stringSetting(cmd, logLevelFlag, logLevelEnv, "warn"))
	if err != nil {
		return err
	}
	jsonLogs, err := cmd.Flags().GetBool(logJSONFlag)
	if err != nil {
		return err
	}
	s.log = logging.NewLogger(logging.LogConfig{
		Level:  level,
		JSON:   jsonLogs,
		Output: cmd.ErrOrStderr(),
	})
	if envErr != nil {
		s.log.Debug("no .env file loaded", "error", envErr)
	}

	var opts []billy.Option
	if root := stringSetting(cmd, rootFlag, rootEnv, ""); root != "" {
		opts = append(opts, billy.WithRoot(root))
		s.log.Debug("using root", "root", root)
	}
	s.fs = billy.NewLocal(opts...)
	return nil
}

// stringSetting returns the flag value when set on the command line, then
// the environment variable, then def.
func stringSetting(cmd *cobra.Command, flag, env, def string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	return def
}
