package redshift

import (
	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

func init() {
	datatype.Register(Redshift)
}

// Redshift is the Redshift backend.
var Redshift = datatype.New(Config).Build()

// New validates a Redshift column definition.
func New(typ string, opts datatype.Options) (*datatype.Column, error) {
	return Redshift.NewColumn(typ, opts)
}

// TypeByBaseType returns the Redshift type used for bt.
func TypeByBaseType(bt core.BaseType) (string, error) {
	return Redshift.TypeByBaseType(bt)
}

// DefinitionForBaseType returns the default Redshift definition for bt.
func DefinitionForBaseType(bt core.BaseType) (*datatype.Column, error) {
	return Redshift.DefinitionForBaseType(bt)
}
