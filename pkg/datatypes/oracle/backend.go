package oracle

import (
	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

func init() {
	datatype.Register(Oracle)
}

// Oracle is the Oracle backend.
var Oracle = datatype.New(Config).Build()

// New validates an Oracle column definition.
func New(typ string, opts datatype.Options) (*datatype.Column, error) {
	return Oracle.NewColumn(typ, opts)
}

// TypeByBaseType returns the Oracle type used for bt.
func TypeByBaseType(bt core.BaseType) (string, error) {
	return Oracle.TypeByBaseType(bt)
}

// DefinitionForBaseType returns the default Oracle definition for bt.
func DefinitionForBaseType(bt core.BaseType) (*datatype.Column, error) {
	return Oracle.DefinitionForBaseType(bt)
}
