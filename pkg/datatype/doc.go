// Package datatype validates and renders column data-type definitions.
//
// A Backend is built from a pure data core.BackendConfig and turns a type
// name plus an Options bag into an immutable Column. Construction checks
// the type against the backend allow-list, rejects unknown option keys,
// evaluates the declarative length rule for the type and, where the
// backend has storage encodings, the compression option. A Column then
// renders itself as SQL, classifies itself into a core.BaseType and
// exports itself as a record or as metadata pairs.
//
// Concrete backends live in pkg/datatypes/* and register themselves from
// init(). Import pkg/datatypes/all to register every backend:
//
//	import _ "github.com/leapstack-labs/datatypes/pkg/datatypes/all"
//
//	col, err := datatype.NewColumn("oracle", "varchar2", datatype.Options{"length": "255"})
//	if err != nil {
//		return err
//	}
//	fmt.Println(col.SQLDefinition()) // VARCHAR2(255)
package datatype
