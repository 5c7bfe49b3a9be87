package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a datatypes.yaml and an example schema",
		Long: `Create a datatypes.yaml configuration and schemas/example.yaml in the
given directory (default: the current directory).

The example schema only uses basetypes, so it is valid for whichever
backend is selected with --backend.`,
		Example: `  # Initialize in the current directory
  datatypes init

  # Initialize a Snowflake project in a new directory
  datatypes init warehouse -b snowflake

  # Overwrite existing files
  datatypes init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	b, err := cmdCtx.Backend("")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	configPath := filepath.Join(dir, "datatypes.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
	}

	files, err := copyTemplate("minimal", dir, templateData{Backend: b.Name()}, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	for _, f := range files {
		r.Muted("  created " + f)
	}

	r.Success(fmt.Sprintf("Initialized datatypes project for %s", b.Name()))
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Describe your tables in schemas/")
	r.Println("  2. Run 'datatypes validate' to check them")
	r.Println("  3. Run 'datatypes ddl schemas/example.yaml' to see the CREATE TABLE statements")
	return nil
}
