package commands

import (
	"fmt"

	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/spf13/cobra"
)

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name             string   `json:"name" yaml:"name"`
	Types            int      `json:"types" yaml:"types"`
	AnyType          bool     `json:"any_type" yaml:"any_type"`
	Encodings        []string `json:"encodings,omitempty" yaml:"encodings,omitempty"`
	StructuredLength bool     `json:"structured_length" yaml:"structured_length"`
	Options          []string `json:"options" yaml:"options"`
}

func backendInfo(b *datatype.Backend) BackendInfo {
	return BackendInfo{
		Name:             b.Name(),
		Types:            len(b.Types()),
		AnyType:          b.AcceptsAnyType(),
		Encodings:        b.Encodings(),
		StructuredLength: b.StructuredLength(),
		Options:          b.OptionKeys(),
	}
}

// NewBackendsCommand creates the backends command.
func NewBackendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered backends",
		Long: `List the backends column definitions can be validated against.

For each backend the number of native types, the supported option keys and
the storage encodings (if any) are shown.`,
		Example: `  # List backends
  datatypes backends

  # As JSON
  datatypes backends -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			var infos []BackendInfo
			for _, name := range datatype.List() {
				b, err := datatype.Lookup(name)
				if err != nil {
					return err
				}
				infos = append(infos, backendInfo(b))
			}

			if ok, err := r.Structured(infos); ok {
				return err
			}

			r.Header(1, fmt.Sprintf("Backends (%d)", len(infos)))
			rows := make([][]any, 0, len(infos))
			for _, info := range infos {
				types := fmt.Sprint(info.Types)
				if info.AnyType {
					types = "any"
				}
				rows = append(rows, []any{info.Name, types, joinOrDash(info.Options), joinOrDash(info.Encodings)})
			}
			r.Table([]string{"Backend", "Types", "Options", "Encodings"}, rows)
			return nil
		},
	}
}
