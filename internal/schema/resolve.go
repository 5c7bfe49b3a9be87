package schema

import (
	"errors"
	"fmt"
	"maps"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

// ErrMissingType is returned for columns with neither type nor basetype.
var ErrMissingType = errors.New("type or basetype is required")

// ErrMissingName is reported for tables and columns without a name.
var ErrMissingName = errors.New("name is required")

// ErrDuplicateColumn is reported when a table declares a column twice.
var ErrDuplicateColumn = errors.New("duplicate column")

// ErrBaseTypeMismatch is reported when a column names both a type and a
// basetype and the type belongs to a different basetype.
var ErrBaseTypeMismatch = errors.New("basetype does not match type")

// BackendFor returns the backend a document targets. An empty backend in
// the document falls back to defaultBackend.
func BackendFor(doc *Document, defaultBackend string) (*datatype.Backend, error) {
	name := doc.Backend
	if name == "" {
		name = defaultBackend
	}
	return datatype.Lookup(name)
}

// Definition validates a column against b. Columns that only name a
// basetype get the backend's native type for it; an explicit length
// option replaces the native default length. A column naming both must
// agree with the backend's classification of the type.
func (c Column) Definition(b *datatype.Backend) (*datatype.Column, error) {
	opts := datatype.Options(maps.Clone(c.Options))
	if opts == nil {
		opts = datatype.Options{}
	}

	if c.Type != "" {
		def, err := b.NewColumn(c.Type, opts)
		if err != nil || c.BaseType == "" {
			return def, err
		}
		bt, err := core.ParseBaseType(c.BaseType)
		if err != nil {
			return nil, err
		}
		if def.BaseType() != bt {
			return nil, fmt.Errorf("%w: %s is %s, not %s", ErrBaseTypeMismatch, def.Type(), def.BaseType(), bt)
		}
		return def, nil
	}
	if c.BaseType == "" {
		return nil, ErrMissingType
	}

	bt, err := core.ParseBaseType(c.BaseType)
	if err != nil {
		return nil, err
	}
	native, err := b.DefinitionForBaseType(bt)
	if err != nil {
		return nil, err
	}
	if _, ok := opts[datatype.OptionLength]; !ok {
		if l, ok := native.Length(); ok {
			opts[datatype.OptionLength] = l
		}
	}
	return b.NewColumn(native.Type(), opts)
}

// columnFromDefinition converts a validated definition back into a
// document column. Nullable is only written when false.
func columnFromDefinition(name string, def *datatype.Column) Column {
	opts := def.Options()
	if def.Nullable() {
		delete(opts, datatype.OptionNullable)
	}
	if len(opts) == 0 {
		opts = nil
	}
	return Column{Name: name, Type: def.Type(), Options: opts}
}

func qualified(table, column string) string {
	return fmt.Sprintf("%s.%s", table, column)
}
