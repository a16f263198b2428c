package resolver

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables resolver debug logging when set to any non-empty value.
const DebugEnv = "ZSH_SSH_DEBUG_RESOLVER"

// DebugFromEnv reports whether DebugEnv is set.
func DebugFromEnv() bool {
	return os.Getenv(DebugEnv) != ""
}

// Opt represents a resolver configuration option
type Opt func(*Config)

// Config holds resolver configuration
type Config struct {
	logger *slog.Logger
	debug  bool
	output io.Writer
}

// WithLogger replaces the default stderr logger
func WithLogger(logger *slog.Logger) Opt {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithDebug forces debug-level logging regardless of the environment
func WithDebug(debug bool) Opt {
	return func(c *Config) {
		c.debug = debug
	}
}

// WithLogOutput redirects the default logger
func WithLogOutput(w io.Writer) Opt {
	return func(c *Config) {
		c.output = w
	}
}

func newConfig(opts []Opt) *Config {
	cfg := &Config{
		debug:  DebugFromEnv(),
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NewLogger(cfg.output, cfg.debug)
	}
	return cfg
}

// NewLogger builds a text logger without time and level attributes, so debug
// traces read as plain key=value lines.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
