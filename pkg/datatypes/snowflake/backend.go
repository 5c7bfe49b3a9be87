package snowflake

import (
	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

func init() {
	datatype.Register(Snowflake)
}

// Snowflake is the Snowflake backend.
var Snowflake = datatype.New(Config).Build()

// New validates a Snowflake column definition.
func New(typ string, opts datatype.Options) (*datatype.Column, error) {
	return Snowflake.NewColumn(typ, opts)
}

// TypeByBaseType returns the Snowflake type used for bt.
func TypeByBaseType(bt core.BaseType) (string, error) {
	return Snowflake.TypeByBaseType(bt)
}

// DefinitionForBaseType returns the default Snowflake definition for bt.
func DefinitionForBaseType(bt core.BaseType) (*datatype.Column, error) {
	return Snowflake.DefinitionForBaseType(bt)
}
