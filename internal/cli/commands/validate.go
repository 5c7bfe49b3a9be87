package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/leapstack-labs/datatypes/internal/cli/output"
	"github.com/leapstack-labs/datatypes/internal/schema"
	"github.com/spf13/cobra"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Watch bool
}

// IssueOutput is one problem in the structured validate output.
type IssueOutput struct {
	Table  string `json:"table" yaml:"table"`
	Column string `json:"column,omitempty" yaml:"column,omitempty"`
	Error  string `json:"error" yaml:"error"`
}

// ReportOutput is the structured validate output for one file.
type ReportOutput struct {
	Path    string        `json:"path" yaml:"path"`
	Backend string        `json:"backend" yaml:"backend"`
	Tables  int           `json:"tables" yaml:"tables"`
	Columns int           `json:"columns" yaml:"columns"`
	OK      bool          `json:"ok" yaml:"ok"`
	Issues  []IssueOutput `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// errIssuesFound makes the command exit non-zero without extra output.
var errIssuesFound = errors.New("validation failed")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [schema.yaml...]",
		Short: "Validate column definitions in schema files",
		Long: `Validate every column of one or more schema documents against their
backend. Files are checked concurrently; every problem found is reported.

Without arguments the schemas listed in datatypes.yaml are used.

With --watch the files are validated again each time they change.`,
		Example: `  # Validate two schema files
  datatypes validate orders.yaml people.yaml

  # Documents without a backend key default to oracle
  datatypes validate -b oracle legacy.yaml

  # Re-validate on every save
  datatypes validate --watch orders.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-validate when files change")
	cmd.Flags().Duration("debounce", 0, "Quiet period before re-validating in watch mode")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts *ValidateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	paths := cmdCtx.SchemaPaths(args)
	if len(paths) == 0 {
		return errors.New("no schema files given and none configured")
	}

	ok, err := validateOnce(cmd.Context(), cmdCtx, paths)
	if !opts.Watch {
		if err != nil {
			return err
		}
		if !ok {
			return errIssuesFound
		}
		return nil
	}
	if err != nil {
		cmdCtx.Renderer.Error(err.Error())
	}

	debounce := cmdCtx.Cfg.Debounce
	if cmd.Flags().Changed("debounce") {
		debounce, _ = cmd.Flags().GetDuration("debounce")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmdCtx.Renderer.Muted(fmt.Sprintf("Watching %d file(s), press Ctrl+C to stop", len(paths)))
	return schema.Watch(ctx, paths, debounce, cmdCtx.Logger, func(changed []string) {
		if _, err := validateOnce(ctx, cmdCtx, changed); err != nil {
			cmdCtx.Renderer.Error(err.Error())
		}
	})
}

// validateOnce validates paths and prints the reports. It reports whether
// every file was free of issues.
func validateOnce(ctx context.Context, cmdCtx *CommandContext, paths []string) (bool, error) {
	reports, err := schema.ValidateFiles(ctx, paths, cmdCtx.Cfg.Backend, cmdCtx.Cfg.Concurrency, cmdCtx.Logger)
	if err != nil {
		return false, err
	}

	outputs := make([]ReportOutput, 0, len(reports))
	allOK := true
	for _, rep := range reports {
		out := ReportOutput{
			Path:    rep.Path,
			Backend: rep.Backend,
			Tables:  rep.Tables,
			Columns: rep.Columns,
			OK:      rep.OK(),
		}
		for _, issue := range rep.Issues {
			out.Issues = append(out.Issues, IssueOutput{Table: issue.Table, Column: issue.Column, Error: issue.Err.Error()})
		}
		allOK = allOK && out.OK
		outputs = append(outputs, out)
	}

	r := cmdCtx.Renderer
	if ok, err := r.Structured(outputs); ok {
		return allOK, err
	}

	for _, out := range outputs {
		if out.OK {
			r.Success(fmt.Sprintf("%s: %d columns in %d tables valid for %s", out.Path, out.Columns, out.Tables, out.Backend))
			continue
		}
		printIssues(r, out)
	}
	return allOK, nil
}

func printIssues(r *output.Renderer, out ReportOutput) {
	r.Header(2, fmt.Sprintf("%s (%s): %d issue(s)", out.Path, out.Backend, len(out.Issues)))
	rows := make([][]any, 0, len(out.Issues))
	for _, issue := range out.Issues {
		rows = append(rows, []any{issue.Table, issue.Column, issue.Error})
	}
	r.Table([]string{"Table", "Column", "Problem"}, rows)
	r.Println("")
}
