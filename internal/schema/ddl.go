package schema

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

// DDL renders a CREATE TABLE statement per table. The first invalid
// column aborts rendering.
func DDL(doc *Document, defaultBackend string) (string, error) {
	b, err := BackendFor(doc, defaultBackend)
	if err != nil {
		return "", err
	}

	stmts := make([]string, 0, len(doc.Tables))
	for _, table := range doc.Tables {
		stmt, err := createTable(b, table)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
	}
	return strings.Join(stmts, "\n\n"), nil
}

func createTable(b *datatype.Backend, table Table) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE %s (\n", QuoteIdentifier(table.Name))

	for i, col := range table.Columns {
		def, err := col.Definition(b)
		if err != nil {
			return "", fmt.Errorf("%s: %w", qualified(table.Name, col.Name), err)
		}
		fmt.Fprintf(&sb, "  %s %s", QuoteIdentifier(col.Name), def.SQLDefinition())
		if i < len(table.Columns)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(");")
	return sb.String(), nil
}

// QuoteIdentifier double-quotes an identifier, doubling embedded quotes.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
