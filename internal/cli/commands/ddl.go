package commands

import (
	"github.com/leapstack-labs/datatypes/internal/cli/output"
	"github.com/leapstack-labs/datatypes/internal/schema"
	"github.com/spf13/cobra"
)

// NewDDLCommand creates the ddl command.
func NewDDLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ddl <schema.yaml>",
		Short: "Print CREATE TABLE statements for a schema document",
		Long: `Validate a schema document and print one CREATE TABLE statement per
table, using each column's SQL definition. The first invalid column stops
rendering.`,
		Example: `  datatypes ddl orders.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			doc, err := schema.Load(args[0])
			if err != nil {
				return err
			}
			ddl, err := schema.DDL(doc, cmdCtx.Cfg.Backend)
			if err != nil {
				return err
			}

			if cmdCtx.Renderer.EffectiveMode() == output.ModeMarkdown {
				cmdCtx.Renderer.Println("```sql")
				cmdCtx.Renderer.Println(ddl)
				cmdCtx.Renderer.Println("```")
				return nil
			}
			cmdCtx.Renderer.Println(ddl)
			return nil
		},
	}
}
