package generic

import (
	"testing"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typ  string
		want core.BaseType
	}{
		{"date", core.BaseTypeDate},
		{"DATETIME", core.BaseTypeTimestamp},
		{"datetime2", core.BaseTypeTimestamp},
		{"smalldatetime", core.BaseTypeTimestamp},
		{"int", core.BaseTypeInteger},
		{"BIGINT", core.BaseTypeInteger},
		{"integer", core.BaseTypeInteger},
		{"float", core.BaseTypeFloat},
		{"double precision", core.BaseTypeFloat},
		{"REAL", core.BaseTypeFloat},
		{"timestamp", core.BaseTypeTimestamp},
		{"timestamp_ltz", core.BaseTypeTimestamp},
		{"bool", core.BaseTypeBoolean},
		{"BOOLEAN", core.BaseTypeBoolean},
		{"decimal", core.BaseTypeNumeric},
		{"NUMBER", core.BaseTypeNumeric},
		{"numeric", core.BaseTypeNumeric},
		{"varchar", core.BaseTypeString},
		{"text", core.BaseTypeString},
		{"STRING", core.BaseTypeString},
		{"json", core.BaseTypeString},
		// "int" matches before "num"
		{"interval_num", core.BaseTypeInteger},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typ))
		})
	}
}

func TestNew_AnyType(t *testing.T) {
	col, err := New("my custom type", datatype.Options{"length": "anything at all"})
	require.NoError(t, err)
	assert.Equal(t, "MY CUSTOM TYPE", col.Type())
	assert.Equal(t, core.BaseTypeString, col.BaseType())

	_, err = New("", nil)
	assert.ErrorIs(t, err, datatype.ErrInvalidType)
}

func TestNew_InvalidOption(t *testing.T) {
	_, err := New("VARCHAR", datatype.Options{"compression": "ZSTD"})
	assert.ErrorIs(t, err, datatype.ErrInvalidOption)
}

func TestSQLDefinition(t *testing.T) {
	tests := []struct {
		typ  string
		opts datatype.Options
		want string
	}{
		{"varchar", nil, "VARCHAR NULL"},
		{"VARCHAR", datatype.Options{"length": "255", "nullable": false}, "VARCHAR(255) NOT NULL"},
		{"VARCHAR", datatype.Options{"length": ""}, "VARCHAR NULL"},
		{"VARCHAR", datatype.Options{"length": "0"}, "VARCHAR(0) NULL"},
		{"VARCHAR", datatype.Options{"default": "NULL"}, "VARCHAR NULL DEFAULT NULL"},
		{"VARCHAR", datatype.Options{"default": "abc"}, "VARCHAR NULL DEFAULT 'abc'"},
		{"VARCHAR", datatype.Options{"default": "O'Brien", "nullable": false}, "VARCHAR NOT NULL DEFAULT 'O''Brien'"},
		{"INT", datatype.Options{"default": 10}, "INT NULL DEFAULT '10'"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			col, err := New(tt.typ, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, col.SQLDefinition())
		})
	}
}

func TestToArrayAndMetadata(t *testing.T) {
	col, err := New("DATE", datatype.Options{"format": "Y-m-d"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"type":     "DATE",
		"length":   nil,
		"nullable": true,
		"format":   "Y-m-d",
	}, col.ToArray())

	md := col.ToMetadata()
	require.Len(t, md, 4)
	assert.Equal(t, datatype.MetadataPair{Key: datatype.MetadataKeyBaseType, Value: "DATE"}, md[2])
	assert.Equal(t, datatype.MetadataPair{Key: datatype.MetadataKeyFormat, Value: "Y-m-d"}, md[3])

	got, err := datatype.FromMetadata(Generic, md)
	require.NoError(t, err)
	f, ok := got.Format()
	assert.True(t, ok)
	assert.Equal(t, "Y-m-d", f)
}

func TestDefinitionForBaseType(t *testing.T) {
	for _, bt := range core.AllBaseTypes() {
		t.Run(bt.String(), func(t *testing.T) {
			typ, err := TypeByBaseType(bt)
			require.NoError(t, err)
			assert.Equal(t, bt.String(), typ)

			col, err := DefinitionForBaseType(bt)
			require.NoError(t, err)
			assert.Equal(t, bt, col.BaseType())
		})
	}
}
