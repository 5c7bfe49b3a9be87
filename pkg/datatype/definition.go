package datatype

import (
	"strings"

	"github.com/leapstack-labs/datatypes/pkg/core"
)

// Definition is the contract every backend column definition satisfies.
// Implementations are immutable; every method is a pure read.
type Definition interface {
	BackendName() string
	Type() string
	Length() (string, bool)
	Nullable() bool
	Default() (string, bool)
	SQLDefinition() string
	BaseType() core.BaseType
	ToArray() map[string]any
	ToMetadata() []MetadataPair
}

// Column is a validated column type definition on one backend.
// Construct it with Backend.NewColumn; the zero value is not usable.
type Column struct {
	backend *Backend

	typ         string
	length      *string
	nullable    bool
	def         *string
	compression *string
	format      *string
}

var _ Definition = (*Column)(nil)

// Backend returns the backend the column was validated against.
func (c *Column) Backend() *Backend {
	return c.backend
}

// BackendName returns the backend identifier.
func (c *Column) BackendName() string {
	return c.backend.Name()
}

// Type returns the upper-cased native type name.
func (c *Column) Type() string {
	return c.typ
}

// Length returns the length specification and whether one was supplied.
func (c *Column) Length() (string, bool) {
	return deref(c.length)
}

// Nullable reports whether the column accepts NULL.
func (c *Column) Nullable() bool {
	return c.nullable
}

// Default returns the default value and whether one was supplied.
func (c *Column) Default() (string, bool) {
	return deref(c.def)
}

// Compression returns the storage encoding, upper-cased.
func (c *Column) Compression() (string, bool) {
	return deref(c.compression)
}

// Format returns the generic format hint.
func (c *Column) Format() (string, bool) {
	return deref(c.format)
}

// BaseType classifies the column type. It never depends on length.
func (c *Column) BaseType() core.BaseType {
	return c.backend.BaseTypeOf(c.typ)
}

// SQLDefinition renders the column type as backend SQL, for example
// "VARCHAR(50) NOT NULL ENCODE ZSTD".
func (c *Column) SQLDefinition() string {
	cfg := c.backend.cfg

	var sb strings.Builder
	sb.WriteString(c.typ)

	if l, ok := c.Length(); ok && !IsEmpty(l) && c.backend.LengthRule(c.typ).Rendered() {
		sb.WriteString("(")
		sb.WriteString(l)
		sb.WriteString(")")
	}

	switch {
	case !c.nullable:
		sb.WriteString(" NOT NULL")
	case cfg.Nulls == core.NullsExplicit:
		sb.WriteString(" NULL")
	}

	if d, ok := c.Default(); ok && d != "" && cfg.RenderDefault {
		sb.WriteString(" DEFAULT ")
		if d == "NULL" {
			sb.WriteString("NULL")
		} else {
			sb.WriteString(QuoteLiteral(d))
		}
	}

	if enc, ok := c.Compression(); ok {
		sb.WriteString(" ENCODE ")
		sb.WriteString(enc)
	}

	return sb.String()
}

// ToArray returns the column as a serializable record. Absent length and
// compression are nil rather than omitted.
func (c *Column) ToArray() map[string]any {
	out := map[string]any{
		"type":     c.typ,
		"length":   ptrValue(c.length),
		"nullable": c.nullable,
	}
	if c.backend.HasEncodings() {
		out["compression"] = ptrValue(c.compression)
	}
	if f, ok := c.Format(); ok && f != "" {
		out["format"] = f
	}
	return out
}

// Options returns the option bag that reconstructs this column.
func (c *Column) Options() Options {
	opts := Options{OptionNullable: c.nullable}
	if c.length != nil {
		opts[OptionLength] = *c.length
	}
	if c.def != nil {
		opts[OptionDefault] = *c.def
	}
	if c.compression != nil {
		opts[OptionCompression] = *c.compression
	}
	if c.format != nil {
		opts[OptionFormat] = *c.format
	}
	return opts
}

// QuoteLiteral renders s as a single-quoted SQL string literal.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func ptrValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
