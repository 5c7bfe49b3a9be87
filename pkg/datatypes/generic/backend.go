package generic

import (
	"strings"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

func init() {
	datatype.Register(Generic)
}

// Generic is the generic backend.
var Generic = datatype.New(Config).Classifier(Classify).Build()

// New builds a generic column definition.
func New(typ string, opts datatype.Options) (*datatype.Column, error) {
	return Generic.NewColumn(typ, opts)
}

// TypeByBaseType returns the generic type used for bt.
func TypeByBaseType(bt core.BaseType) (string, error) {
	return Generic.TypeByBaseType(bt)
}

// DefinitionForBaseType returns the default generic definition for bt.
func DefinitionForBaseType(bt core.BaseType) (*datatype.Column, error) {
	return Generic.DefinitionForBaseType(bt)
}

// Classify maps a type name to a basetype by the fragments it contains.
// Rules are checked in order, so "DATETIME" is a timestamp and
// "BIGINT" an integer. Unmatched names are strings.
func Classify(typ string) core.BaseType {
	t := strings.ToLower(typ)
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(t, s) {
				return true
			}
		}
		return false
	}

	switch {
	case has("date"):
		if has("time") {
			return core.BaseTypeTimestamp
		}
		return core.BaseTypeDate
	case has("int"):
		return core.BaseTypeInteger
	case has("float", "double", "real"):
		return core.BaseTypeFloat
	case has("timestamp"):
		return core.BaseTypeTimestamp
	case has("bool"):
		return core.BaseTypeBoolean
	case has("decimal", "num"):
		return core.BaseTypeNumeric
	default:
		return core.BaseTypeString
	}
}
