package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/spf13/cobra"
)

// TypeInfo describes one native type of a backend.
type TypeInfo struct {
	Type      string   `json:"type" yaml:"type"`
	BaseType  string   `json:"basetype" yaml:"basetype"`
	Length    string   `json:"length" yaml:"length"`
	Encodings []string `json:"encodings,omitempty" yaml:"encodings,omitempty"`
}

// TypesOptions holds options for the types command.
type TypesOptions struct {
	BaseType string // only list types of this basetype
}

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	opts := &TypesOptions{}
	cmd := &cobra.Command{
		Use:   "types [backend]",
		Short: "List the native types of a backend",
		Long: `List every native type a backend accepts with its basetype, the length
it takes and, for backends with storage encodings, the encodings allowed
for it.

Without an argument the configured backend is used.`,
		Example: `  # Oracle types
  datatypes types oracle

  # Redshift numeric types
  datatypes types redshift --basetype numeric`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return datatype.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return runTypes(cmd, name, opts)
		},
	}

	cmd.Flags().StringVar(&opts.BaseType, "basetype", "", "Only list types of this basetype")

	return cmd
}

func runTypes(cmd *cobra.Command, name string, opts *TypesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	b, err := cmdCtx.Backend(name)
	if err != nil {
		return err
	}
	if b.AcceptsAnyType() {
		r.Muted(fmt.Sprintf("%s accepts any type name", b.Name()))
		return nil
	}

	filter := strings.ToUpper(strings.TrimSpace(opts.BaseType))
	var infos []TypeInfo
	for _, typ := range b.Types() {
		bt := b.BaseTypeOf(typ)
		if filter != "" && string(bt) != filter {
			continue
		}
		info := TypeInfo{
			Type:     typ,
			BaseType: string(bt),
			Length:   b.LengthRule(typ).Describe(),
		}
		if b.HasEncodings() {
			info.Encodings = b.EncodingsFor(typ)
		}
		infos = append(infos, info)
	}

	if ok, err := r.Structured(infos); ok {
		return err
	}

	r.Header(1, fmt.Sprintf("%s types (%d)", b.Name(), len(infos)))
	header := []string{"Type", "Basetype", "Length"}
	if b.HasEncodings() {
		header = append(header, "Encodings")
	}
	rows := make([][]any, 0, len(infos))
	for _, info := range infos {
		row := []any{info.Type, info.BaseType, info.Length}
		if b.HasEncodings() {
			row = append(row, joinOrDash(info.Encodings))
		}
		rows = append(rows, row)
	}
	r.Table(header, rows)
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
