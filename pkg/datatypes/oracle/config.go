// Package oracle provides the Oracle column type backend.
package oracle

import "github.com/leapstack-labs/datatypes/pkg/core"

// Config is the Oracle backend configuration.
var Config = &core.BackendConfig{
	Name: "oracle",
	Types: []string{
		"CHAR", "NCHAR",
		"VARCHAR", "NVARCHAR",
		"VARCHAR2", "NVARCHAR2",
		"CLOB", "NCLOB",
		"LONG",
		"NUMBER",
		"DATE",
		"BLOB", "BFILE", "RAW", "LONG RAW",
	},

	LengthRules: map[string]core.LengthRule{
		"CHAR":      core.Bounded(1, 255),
		"NCHAR":     core.Bounded(1, 255),
		"VARCHAR":   core.Required(1, 4000),
		"VARCHAR2":  core.Required(1, 4000),
		"NVARCHAR":  core.Required(1, 4000),
		"NVARCHAR2": core.Required(1, 4000),
		"CLOB":      core.Required(1, 4294967295),
		"NCLOB":     core.Required(1, 4294967295),
		"LONG":      core.Required(1, 2147483647),
		"DATE":      core.Bounded(0, 6),
		// scale is only checked for being numeric
		"NUMBER": core.Precision(255),
	},
	DefaultLengthRule: core.Forbidden(),

	BaseTypes: map[string]core.BaseType{
		"NUMBER": core.BaseTypeNumeric,
		"DATE":   core.BaseTypeDate,
	},

	Canonical: map[core.BaseType]core.CanonicalType{
		core.BaseTypeString:    {Type: "VARCHAR2", Length: "4000"},
		core.BaseTypeInteger:   {Type: "NUMBER", Length: "38,0"},
		core.BaseTypeNumeric:   {Type: "NUMBER"},
		core.BaseTypeFloat:     {Type: "NUMBER"},
		core.BaseTypeBoolean:   {Type: "NUMBER", Length: "1,0"},
		core.BaseTypeDate:      {Type: "DATE"},
		core.BaseTypeTimestamp: {Type: "DATE"},
	},

	Nulls: core.NullsNotNullOnly,
}
