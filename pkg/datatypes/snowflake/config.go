// Package snowflake provides the Snowflake column type backend.
// Snowflake accepts the length option as text or as a structured
// {character_maximum, numeric_precision, numeric_scale} map.
package snowflake

import "github.com/leapstack-labs/datatypes/pkg/core"

var (
	numericRule   = core.PrecisionScale(38, 38)
	stringRule    = core.Bounded(1, 16777216)
	timestampRule = core.Bounded(0, 9)
	binaryRule    = core.Bounded(1, 8388608)
)

// Config is the Snowflake backend configuration.
var Config = &core.BackendConfig{
	Name: "snowflake",
	Types: []string{
		"NUMBER",
		"DECIMAL", "NUMERIC",
		"INT", "INTEGER", "BIGINT", "SMALLINT", "TINYINT", "BYTEINT",
		"FLOAT", "FLOAT4", "FLOAT8",
		"DOUBLE", "DOUBLE PRECISION", "REAL",
		"VARCHAR",
		"CHAR", "CHARACTER",
		"STRING", "TEXT",
		"BOOLEAN",
		"DATE",
		"DATETIME",
		"TIME",
		"TIMESTAMP", "TIMESTAMP_NTZ", "TIMESTAMP_LTZ", "TIMESTAMP_TZ",
		"VARIANT",
		"BINARY", "VARBINARY",
	},

	LengthRules: map[string]core.LengthRule{
		"NUMBER":        numericRule,
		"DECIMAL":       numericRule,
		"NUMERIC":       numericRule,
		"VARCHAR":       stringRule,
		"CHAR":          stringRule,
		"CHARACTER":     stringRule,
		"STRING":        stringRule,
		"TEXT":          stringRule,
		"TIME":          timestampRule,
		"DATETIME":      timestampRule,
		"TIMESTAMP":     timestampRule,
		"TIMESTAMP_NTZ": timestampRule,
		"TIMESTAMP_LTZ": timestampRule,
		"TIMESTAMP_TZ":  timestampRule,
		"BINARY":        binaryRule,
		"VARBINARY":     binaryRule,
	},
	DefaultLengthRule: core.Forbidden(),

	BaseTypes: map[string]core.BaseType{
		"INT":              core.BaseTypeInteger,
		"INTEGER":          core.BaseTypeInteger,
		"BIGINT":           core.BaseTypeInteger,
		"SMALLINT":         core.BaseTypeInteger,
		"TINYINT":          core.BaseTypeInteger,
		"BYTEINT":          core.BaseTypeInteger,
		"NUMBER":           core.BaseTypeNumeric,
		"DECIMAL":          core.BaseTypeNumeric,
		"NUMERIC":          core.BaseTypeNumeric,
		"FLOAT":            core.BaseTypeFloat,
		"FLOAT4":           core.BaseTypeFloat,
		"FLOAT8":           core.BaseTypeFloat,
		"DOUBLE":           core.BaseTypeFloat,
		"DOUBLE PRECISION": core.BaseTypeFloat,
		"REAL":             core.BaseTypeFloat,
		"BOOLEAN":          core.BaseTypeBoolean,
		"DATE":             core.BaseTypeDate,
		"DATETIME":         core.BaseTypeTimestamp,
		"TIMESTAMP":        core.BaseTypeTimestamp,
		"TIMESTAMP_NTZ":    core.BaseTypeTimestamp,
		"TIMESTAMP_LTZ":    core.BaseTypeTimestamp,
		"TIMESTAMP_TZ":     core.BaseTypeTimestamp,
	},

	Canonical: map[core.BaseType]core.CanonicalType{
		core.BaseTypeString:    {Type: "VARCHAR"},
		core.BaseTypeInteger:   {Type: "INTEGER"},
		core.BaseTypeNumeric:   {Type: "NUMBER"},
		core.BaseTypeFloat:     {Type: "FLOAT"},
		core.BaseTypeBoolean:   {Type: "BOOLEAN"},
		core.BaseTypeDate:      {Type: "DATE"},
		core.BaseTypeTimestamp: {Type: "TIMESTAMP"},
	},

	StructuredLength: true,
	Nulls:            core.NullsNotNullOnly,
}
