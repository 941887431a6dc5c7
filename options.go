package fast

import (
	"log/slog"

	"github.com/xaviervia/fast/fs/billy"
	"github.com/xaviervia/fast/fs/core"
	"github.com/xaviervia/fast/internal/logging"
	"github.com/xaviervia/fast/tree"
)

// Option configures handles.
type Option func(*config)

type config struct {
	fs     core.FS
	logger *slog.Logger
}

// WithFilesystem sets the filesystem handles operate on. Defaults to the
// host filesystem rooted at the working directory.
func WithFilesystem(filesystem core.FS) Option {
	return func(c *config) {
		c.fs = filesystem
	}
}

// WithLogger sets the logger tree operations are reported to. Nothing is
// logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// env is the shared backing of handles derived from one another.
type env struct {
	fs      core.FS
	mutator *tree.Mutator
	log     *logging.Logger
}

func newEnv(opts []Option) *env {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fs == nil {
		cfg.fs = billy.NewLocal()
	}

	log := logging.NewNopLogger()
	if cfg.logger != nil {
		log = logging.FromSlog(cfg.logger)
	}
	return &env{
		fs:      cfg.fs,
		mutator: tree.New(cfg.fs, tree.WithLogger(log)),
		log:     log,
	}
}
