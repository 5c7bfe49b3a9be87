// Package generic provides the catch-all column type backend.
//
// The generic backend accepts any type name and any length, classifies
// types into basetypes by name fragments and renders explicit NULL /
// NOT NULL plus an optional DEFAULT clause. It also carries a free-form
// "format" option.
package generic

import "github.com/leapstack-labs/datatypes/pkg/core"

// Config is the generic backend configuration.
var Config = &core.BackendConfig{
	Name:              "generic",
	DefaultLengthRule: core.Unchecked(),
	ExtraOptions:      []string{"format"},

	// Basetype names classify back to themselves.
	Canonical: map[core.BaseType]core.CanonicalType{
		core.BaseTypeString:    {Type: string(core.BaseTypeString)},
		core.BaseTypeInteger:   {Type: string(core.BaseTypeInteger)},
		core.BaseTypeNumeric:   {Type: string(core.BaseTypeNumeric)},
		core.BaseTypeFloat:     {Type: string(core.BaseTypeFloat)},
		core.BaseTypeBoolean:   {Type: string(core.BaseTypeBoolean)},
		core.BaseTypeDate:      {Type: string(core.BaseTypeDate)},
		core.BaseTypeTimestamp: {Type: string(core.BaseTypeTimestamp)},
	},

	Nulls:         core.NullsExplicit,
	RenderDefault: true,
}
