package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/datatypes/internal/cli/config"
	"github.com/leapstack-labs/datatypes/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	cfgFile = ""
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "datatypes", cmd.Use)
	for _, flag := range []string{"config", "backend", "output", "verbose", "concurrency"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"backends", "types", "render", "validate", "convert", "ddl", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommand_BackendFlag(t *testing.T) {
	out, err := run(t, "render", "varchar2", "-b", "oracle", "--length", "20", "--not-null", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "VARCHAR2(20) NOT NULL\n", out)

	out, err = run(t, "render", "INTEGER", "--backend", "redshift", "--compression", "az64", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"sql": "INTEGER ENCODE AZ64"`)
	assert.Contains(t, out, `"basetype": "INTEGER"`)
}

func TestRootCommand_EnvBackend(t *testing.T) {
	t.Setenv("DATATYPES_BACKEND", "snowflake")
	out, err := run(t, "render", "--basetype", "string")
	require.NoError(t, err)
	assert.Equal(t, "VARCHAR\n", out)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := testutil.WriteSchema(t, dir, "people.yaml", "tables:\n  - name: people\n    columns:\n      - name: id\n        type: NUMBER\n")
	cfgPath := filepath.Join(dir, "datatypes.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: oracle\nschemas:\n  - people.yaml\n"), 0600))

	out, err := run(t, "--config", cfgPath, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, schemaPath)
	assert.Contains(t, out, "valid for oracle")
}

func TestRootCommand_InvalidBackend(t *testing.T) {
	_, err := run(t, "backends", "-b", "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown backend "mysql"`)
}

func TestRootCommand_Verbose(t *testing.T) {
	out, err := run(t, "render", "int", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration loaded")
	assert.Contains(t, out, "rendered column")
}

func TestCompletionCommand(t *testing.T) {
	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "datatypes")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}
