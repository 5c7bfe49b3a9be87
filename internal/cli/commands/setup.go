package commands

import (
	"log/slog"

	"github.com/leapstack-labs/datatypes/internal/cli/config"
	"github.com/leapstack-labs/datatypes/internal/cli/output"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context for cmd from the loaded config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

// Backend resolves name, falling back to the configured backend.
func (c *CommandContext) Backend(name string) (*datatype.Backend, error) {
	if name == "" {
		name = c.Cfg.Backend
	}
	return datatype.Lookup(name)
}

// SchemaPaths returns args, or the configured schema files when args is empty.
func (c *CommandContext) SchemaPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return c.Cfg.Schemas
}

// getConfig returns the loaded configuration, or defaults when commands
// run without the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Backend:     config.DefaultBackend,
		Output:      config.DefaultOutput,
		Concurrency: config.DefaultConcurrency,
		Debounce:    config.DefaultDebounce,
	}
}
