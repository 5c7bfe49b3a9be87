package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/spf13/cobra"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	BaseType    string
	Length      string
	NotNull     bool
	Default     string
	Compression string
	Format      string
	Extra       map[string]string
	Metadata    bool
}

// RenderOutput is the structured output of the render command.
type RenderOutput struct {
	Backend    string                  `json:"backend" yaml:"backend"`
	SQL        string                  `json:"sql" yaml:"sql"`
	BaseType   string                  `json:"basetype" yaml:"basetype"`
	Definition map[string]any          `json:"definition" yaml:"definition"`
	Metadata   []datatype.MetadataPair `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   "render [type]",
		Short: "Validate a column type and print its SQL definition",
		Long: `Validate a single column definition against a backend and print the SQL
fragment used in CREATE TABLE statements.

Either a native type or --basetype must be given. With --basetype the
backend's default native type for that basetype is used.`,
		Example: `  # VARCHAR2(255) NOT NULL
  datatypes render varchar2 -b oracle --length 255 --not-null

  # Redshift column with an encoding
  datatypes render INTEGER -b redshift --compression az64

  # Native Snowflake type for a basetype, with metadata
  datatypes render -b snowflake --basetype timestamp --metadata`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var typ string
			if len(args) > 0 {
				typ = args[0]
			}
			return runRender(cmd, typ, opts)
		},
	}

	cmd.Flags().StringVar(&opts.BaseType, "basetype", "", "Use the native type for this basetype")
	cmd.Flags().StringVarP(&opts.Length, "length", "l", "", "Length, e.g. 255 or 10,2")
	cmd.Flags().BoolVar(&opts.NotNull, "not-null", false, "Mark the column NOT NULL")
	cmd.Flags().StringVar(&opts.Default, "default", "", "Default value")
	cmd.Flags().StringVar(&opts.Compression, "compression", "", "Storage encoding (backends with encodings only)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Format hint (backends that accept one)")
	cmd.Flags().StringToStringVar(&opts.Extra, "option", nil, "Additional option as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.Metadata, "metadata", false, "Also print the metadata pairs")

	_ = cmd.RegisterFlagCompletionFunc("basetype", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(core.AllBaseTypes()))
		for _, bt := range core.AllBaseTypes() {
			names = append(names, string(bt))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// renderOptions collects the options whose flags were set.
func renderOptions(cmd *cobra.Command, opts *RenderOptions) datatype.Options {
	o := datatype.Options{}
	for k, v := range opts.Extra {
		o[k] = v
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		o[datatype.OptionLength] = opts.Length
	}
	if flags.Changed("not-null") {
		o[datatype.OptionNullable] = !opts.NotNull
	}
	if flags.Changed("default") {
		o[datatype.OptionDefault] = opts.Default
	}
	if flags.Changed("compression") {
		o[datatype.OptionCompression] = opts.Compression
	}
	if flags.Changed("format") {
		o[datatype.OptionFormat] = opts.Format
	}
	return o
}

func runRender(cmd *cobra.Command, typ string, opts *RenderOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	b, err := cmdCtx.Backend("")
	if err != nil {
		return err
	}

	switch {
	case typ != "" && opts.BaseType != "":
		return errors.New("give either a type or --basetype, not both")
	case typ == "" && opts.BaseType == "":
		return errors.New("a type or --basetype is required")
	}

	o := renderOptions(cmd, opts)
	if opts.BaseType != "" {
		bt, err := core.ParseBaseType(opts.BaseType)
		if err != nil {
			return err
		}
		native, err := b.DefinitionForBaseType(bt)
		if err != nil {
			return err
		}
		typ = native.Type()
		if l, ok := native.Length(); ok {
			if _, set := o[datatype.OptionLength]; !set {
				o[datatype.OptionLength] = l
			}
		}
	}

	col, err := b.NewColumn(typ, o)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("rendered column", "backend", b.Name(), "type", col.Type(), "basetype", col.BaseType())

	out := RenderOutput{
		Backend:    b.Name(),
		SQL:        col.SQLDefinition(),
		BaseType:   string(col.BaseType()),
		Definition: col.ToArray(),
	}
	if opts.Metadata {
		out.Metadata = col.ToMetadata()
	}

	if ok, err := r.Structured(out); ok {
		return err
	}

	r.Println(out.SQL)
	if opts.Metadata {
		r.Println("")
		rows := make([][]any, 0, len(out.Metadata))
		for _, p := range out.Metadata {
			rows = append(rows, []any{p.Key, fmt.Sprint(p.Value)})
		}
		r.Table([]string{"Key", "Value"}, rows)
	}
	return nil
}
