package schema

import (
	"fmt"

	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

// Convert re-targets doc to another backend. Every column is classified
// into its basetype on the source backend and rebuilt from the target's
// native type for that basetype. Nullability and defaults carry over;
// lengths and backend-specific options do not.
func Convert(doc *Document, defaultBackend string, target *datatype.Backend) (*Document, error) {
	source, err := BackendFor(doc, defaultBackend)
	if err != nil {
		return nil, err
	}

	out := &Document{Backend: target.Name(), Tables: make([]Table, 0, len(doc.Tables))}
	for _, table := range doc.Tables {
		converted := Table{Name: table.Name, Columns: make([]Column, 0, len(table.Columns))}
		for _, col := range table.Columns {
			def, err := col.Definition(source)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", qualified(table.Name, col.Name), err)
			}

			tgt, err := datatype.FromMetadata(target, portableMetadata(def))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", qualified(table.Name, col.Name), err)
			}
			converted.Columns = append(converted.Columns, columnFromDefinition(col.Name, tgt))
		}
		out.Tables = append(out.Tables, converted)
	}
	return out, nil
}

// portableMetadata keeps the metadata pairs that mean the same thing on
// every backend.
func portableMetadata(def datatype.Definition) []datatype.MetadataPair {
	var pairs []datatype.MetadataPair
	for _, p := range def.ToMetadata() {
		switch p.Key {
		case datatype.MetadataKeyBaseType, datatype.MetadataKeyNullable, datatype.MetadataKeyDefault:
			pairs = append(pairs, p)
		}
	}
	return pairs
}
