package commands

import (
	"errors"
	"os"

	"github.com/leapstack-labs/datatypes/internal/schema"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/spf13/cobra"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	To      string
	OutFile string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <schema.yaml>",
		Short: "Convert a schema document to another backend",
		Long: `Convert a schema document to another backend by way of basetypes.

Each column is classified into its basetype on the source backend and
rebuilt from the target backend's native type for that basetype.
Nullability and defaults are kept; lengths and backend-specific options
are replaced by the target's defaults.

The converted document is written as YAML.`,
		Example: `  # Snowflake schema to Oracle
  datatypes convert orders.yaml --to oracle

  # Write the result to a file
  datatypes convert orders.yaml --to redshift --out orders.redshift.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "Target backend (required)")
	cmd.Flags().StringVar(&opts.OutFile, "out", "", "Write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.RegisterFlagCompletionFunc("to", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return datatype.List(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runConvert(cmd *cobra.Command, path string, opts *ConvertOptions) error {
	cmdCtx := NewCommandContext(cmd)
	if opts.To == "" {
		return errors.New("--to is required")
	}

	target, err := datatype.Lookup(opts.To)
	if err != nil {
		return err
	}
	doc, err := schema.Load(path)
	if err != nil {
		return err
	}
	converted, err := schema.Convert(doc, cmdCtx.Cfg.Backend, target)
	if err != nil {
		return err
	}
	data, err := schema.Marshal(converted)
	if err != nil {
		return err
	}

	if opts.OutFile != "" {
		if err := os.WriteFile(opts.OutFile, data, 0600); err != nil {
			return err
		}
		cmdCtx.Renderer.Success("Wrote " + opts.OutFile)
		return nil
	}
	_, err = cmdCtx.Renderer.Writer().Write(data)
	return err
}
