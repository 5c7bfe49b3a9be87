package commands

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/datatypes/internal/cli/config"
	"github.com/leapstack-labs/datatypes/internal/cli/output"
	"github.com/leapstack-labs/datatypes/internal/cli/testutil"
	"github.com/leapstack-labs/datatypes/internal/schema"
	_ "github.com/leapstack-labs/datatypes/pkg/datatypes/all"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with args and returns stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewBackendsCommand(), "backends", nil},
		{NewTypesCommand(), "types [backend]", []string{"basetype"}},
		{NewRenderCommand(), "render [type]", []string{"basetype", "length", "not-null", "default", "compression", "format", "option", "metadata"}},
		{NewValidateCommand(), "validate [schema.yaml...]", []string{"watch", "debounce"}},
		{NewConvertCommand(), "convert <schema.yaml>", []string{"to", "out"}},
		{NewDDLCommand(), "ddl <schema.yaml>", nil},
		{NewInitCommand(), "init [directory]", []string{"force"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestBackendsCommand(t *testing.T) {
	out, _, err := execute(t, NewBackendsCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# Backends (4)")
	for _, name := range []string{"generic", "oracle", "redshift", "snowflake"} {
		assert.Contains(t, out, "| "+name+" |")
	}
	testutil.AssertNoANSI(t, out)
}

func TestTypesCommand(t *testing.T) {
	out, _, err := execute(t, NewTypesCommand(), "oracle")
	require.NoError(t, err)
	assert.Contains(t, out, "# oracle types (15)")
	assert.Contains(t, out, "| VARCHAR2 | STRING | required, 1..4000 |")

	out, _, err = execute(t, NewTypesCommand(), "redshift", "--basetype", "boolean")
	require.NoError(t, err)
	assert.Contains(t, out, "| BOOLEAN | BOOLEAN |")
	assert.NotContains(t, out, "SMALLINT")

	out, _, err = execute(t, NewTypesCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "generic accepts any type name")

	_, _, err = execute(t, NewTypesCommand(), "mysql")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, NewRenderCommand(), "varchar", "--length", "10", "--not-null", "--default", "n/a")
	require.NoError(t, err)
	assert.Equal(t, "VARCHAR(10) NOT NULL DEFAULT 'n/a'\n", out)

	out, _, err = execute(t, NewRenderCommand(), "--basetype", "integer", "--metadata")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "INTEGER NULL\n"), out)
	assert.Contains(t, out, "| KBC.datatype.basetype | INTEGER |")
}

func TestRenderCommand_Errors(t *testing.T) {
	_, _, err := execute(t, NewRenderCommand())
	assert.Error(t, err)

	_, _, err = execute(t, NewRenderCommand(), "INT", "--basetype", "integer")
	assert.Error(t, err)

	_, _, err = execute(t, NewRenderCommand(), "INT", "--option", "collation=utf8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `option "collation" not supported`)

	_, _, err = execute(t, NewRenderCommand(), "--basetype", "blob")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteSchema(t, dir, "orders.yaml", testutil.OrdersSchema)
	bad := testutil.WriteSchema(t, dir, "people.yaml", testutil.BrokenSchema)

	out, _, err := execute(t, NewValidateCommand(), good)
	require.NoError(t, err)
	assert.Contains(t, out, "3 columns in 1 tables valid for snowflake")

	out, _, err = execute(t, NewValidateCommand(), good, bad)
	assert.ErrorIs(t, err, errIssuesFound)
	assert.Contains(t, out, "people.yaml (oracle): 1 issue(s)")
	assert.Contains(t, out, `"TEXT" is not a valid type`)

	_, _, err = execute(t, NewValidateCommand())
	assert.Error(t, err)
}

func TestValidateCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	bad := testutil.WriteSchema(t, dir, "people.yaml", testutil.BrokenSchema)

	tr := testutil.NewTestRenderer(output.ModeJSON, false)
	cmdCtx := &CommandContext{
		Cfg:      &config.Config{Backend: "generic", Concurrency: 1},
		Logger:   slog.New(slog.DiscardHandler),
		Renderer: tr.Renderer,
	}

	ok, err := validateOnce(t.Context(), cmdCtx, []string{bad})
	require.NoError(t, err)
	assert.False(t, ok)

	var reports []ReportOutput
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "oracle", reports[0].Backend)
	assert.Equal(t, []IssueOutput{{Table: "people", Column: "bio", Error: `oracle: "TEXT" is not a valid type`}}, reports[0].Issues)
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteSchema(t, dir, "orders.yaml", testutil.OrdersSchema)

	out, _, err := execute(t, NewConvertCommand(), src, "--to", "oracle")
	require.NoError(t, err)

	doc, err := schema.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "oracle", doc.Backend)
	require.Len(t, doc.Tables[0].Columns, 3)
	assert.Equal(t, "VARCHAR2", doc.Tables[0].Columns[1].Type)

	dst := filepath.Join(dir, "orders.oracle.yaml")
	_, _, err = execute(t, NewConvertCommand(), src, "--to", "oracle", "--out", dst)
	require.NoError(t, err)
	written, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))

	_, _, err = execute(t, NewConvertCommand(), src)
	assert.Error(t, err)
}

func TestDDLCommand(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteSchema(t, dir, "orders.yaml", testutil.OrdersSchema)

	out, _, err := execute(t, NewDDLCommand(), src)
	require.NoError(t, err)
	assert.Equal(t, "```sql\n"+`CREATE TABLE "orders" (
  "id" NUMBER(38,0) NOT NULL,
  "note" VARCHAR(255),
  "created_at" TIMESTAMP
);`+"\n```\n", out)

	bad := testutil.WriteSchema(t, dir, "people.yaml", testutil.BrokenSchema)
	_, _, err = execute(t, NewDDLCommand(), bad)
	assert.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	out, _, err := execute(t, NewInitCommand(), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized datatypes project for generic")

	for _, f := range []string{"datatypes.yaml", "schemas/example.yaml"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}

	example, err := schema.Load(filepath.Join(dir, "schemas", "example.yaml"))
	require.NoError(t, err)
	report, err := schema.Validate(example, "")
	require.NoError(t, err)
	assert.True(t, report.OK(), "%v", report.Issues)

	_, _, err = execute(t, NewInitCommand(), dir)
	assert.Error(t, err, "existing config without --force")

	_, _, err = execute(t, NewInitCommand(), dir, "--force")
	assert.NoError(t, err)
}
