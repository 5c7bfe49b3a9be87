// Package redshift provides the Redshift column type backend.
// Redshift columns take an optional storage encoding ("compression")
// and integer, float, boolean and datetime types accept their storage
// width in bytes as length. Widths are validated but never rendered.
package redshift

import "github.com/leapstack-labs/datatypes/pkg/core"

// Type families used by the length rules and the encoding table.
var (
	smallintTypes  = []string{"SMALLINT", "INT2"}
	integerTypes   = []string{"INTEGER", "INT", "INT4"}
	bigintTypes    = []string{"BIGINT", "INT8"}
	decimalTypes   = []string{"DECIMAL", "NUMERIC"}
	realTypes      = []string{"REAL", "FLOAT4"}
	doubleTypes    = []string{"DOUBLE PRECISION", "FLOAT8", "FLOAT"}
	booleanTypes   = []string{"BOOLEAN", "BOOL"}
	charTypes      = []string{"CHAR", "CHARACTER", "NCHAR", "BPCHAR"}
	varcharTypes   = []string{"VARCHAR", "CHARACTER VARYING", "NVARCHAR", "TEXT"}
	dateTypes      = []string{"DATE"}
	timestampTypes = []string{"TIMESTAMP", "TIMESTAMP WITHOUT TIME ZONE"}
	timestamptz    = []string{"TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE"}
)

func families(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func rules(rule core.LengthRule, groups ...[]string) map[string]core.LengthRule {
	out := make(map[string]core.LengthRule)
	for _, t := range families(groups...) {
		out[t] = rule
	}
	return out
}

func baseTypes(bt core.BaseType, groups ...[]string) map[string]core.BaseType {
	out := make(map[string]core.BaseType)
	for _, t := range families(groups...) {
		out[t] = bt
	}
	return out
}

func merge[V any](maps ...map[string]V) map[string]V {
	out := make(map[string]V)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Config is the Redshift backend configuration.
var Config = &core.BackendConfig{
	Name: "redshift",
	Types: families(
		smallintTypes, integerTypes, bigintTypes,
		decimalTypes,
		realTypes, doubleTypes,
		booleanTypes,
		charTypes, varcharTypes,
		dateTypes, timestampTypes, timestamptz,
	),

	LengthRules: merge(
		rules(core.PrecisionScale(37, 37), decimalTypes),
		rules(core.Bounded(1, 65535), varcharTypes),
		rules(core.Bounded(1, 4096), charTypes),
		rules(core.StorageWidth(2), smallintTypes),
		rules(core.StorageWidth(4), integerTypes, realTypes, dateTypes),
		rules(core.StorageWidth(8), bigintTypes, doubleTypes, timestampTypes, timestamptz),
		rules(core.StorageWidth(1), booleanTypes),
	),
	DefaultLengthRule: core.Forbidden(),

	BaseTypes: merge(
		baseTypes(core.BaseTypeInteger, smallintTypes, integerTypes, bigintTypes),
		baseTypes(core.BaseTypeNumeric, decimalTypes),
		baseTypes(core.BaseTypeFloat, realTypes, doubleTypes),
		baseTypes(core.BaseTypeBoolean, booleanTypes),
		baseTypes(core.BaseTypeDate, dateTypes),
		baseTypes(core.BaseTypeTimestamp, timestampTypes, timestamptz),
	),

	Canonical: map[core.BaseType]core.CanonicalType{
		core.BaseTypeString:    {Type: "VARCHAR"},
		core.BaseTypeInteger:   {Type: "INTEGER"},
		core.BaseTypeNumeric:   {Type: "NUMERIC"},
		core.BaseTypeFloat:     {Type: "FLOAT"},
		core.BaseTypeBoolean:   {Type: "BOOLEAN"},
		core.BaseTypeDate:      {Type: "DATE"},
		core.BaseTypeTimestamp: {Type: "TIMESTAMP"},
	},

	Encodings: []core.EncodingDef{
		{Name: "RAW"},
		{Name: "AZ64", Types: families(smallintTypes, integerTypes, bigintTypes, decimalTypes, dateTypes, timestampTypes, timestamptz)},
		{Name: "BYTEDICT", Except: booleanTypes},
		{Name: "DELTA", Types: families(smallintTypes, integerTypes, bigintTypes, decimalTypes, dateTypes, timestampTypes)},
		{Name: "DELTA32K", Types: families(integerTypes, bigintTypes, decimalTypes, dateTypes, timestampTypes)},
		{Name: "LZO", Except: families(booleanTypes, realTypes, doubleTypes)},
		{Name: "MOSTLY8", Types: families(smallintTypes, integerTypes, bigintTypes, decimalTypes)},
		{Name: "MOSTLY16", Types: families(integerTypes, bigintTypes, decimalTypes)},
		{Name: "MOSTLY32", Types: families(bigintTypes, decimalTypes)},
		{Name: "RUNLENGTH"},
		{Name: "TEXT255", Types: varcharTypes},
		{Name: "TEXT32K", Types: varcharTypes},
		{Name: "ZSTD"},
	},

	Nulls: core.NullsNotNullOnly,
}
