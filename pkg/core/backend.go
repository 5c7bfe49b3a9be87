package core

// BackendConfig holds the static configuration for a storage backend.
// This is pure data with no behavior.
//
// The runtime behavior (validation, classification, rendering) lives in
// pkg/datatype.Backend, which is built from this config.
type BackendConfig struct {
	// Name is the backend identifier (e.g., "oracle", "snowflake")
	Name string

	// Types is the allow-list of native type names in canonical upper case.
	// An empty list accepts any type name.
	Types []string

	// LengthRules maps a type to its length grammar.
	// Types without an entry use DefaultLengthRule.
	LengthRules       map[string]LengthRule
	DefaultLengthRule LengthRule

	// BaseTypes maps a type to its basetype. Types without an entry are STRING.
	BaseTypes map[string]BaseType

	// Canonical maps each basetype back to the backend's native type.
	Canonical map[BaseType]CanonicalType

	// Encodings lists the storage encodings the backend supports.
	// A nil list means the backend has no "compression" option.
	Encodings []EncodingDef

	// ExtraOptions are option keys accepted on top of length, nullable and default.
	ExtraOptions []string

	// StructuredLength enables {character_maximum, numeric_precision, numeric_scale}
	// maps as the length option.
	StructuredLength bool

	// Rendering
	Nulls         NullStyle
	RenderDefault bool // append DEFAULT clause to SQL definitions
}

// CanonicalType is the native type a backend uses for a basetype,
// with the length a default-configured definition gets.
type CanonicalType struct {
	Type   string
	Length string
}

// EncodingDef declares a storage encoding and the types it applies to.
type EncodingDef struct {
	Name   string
	Types  []string // nil means every type of the backend
	Except []string // removed from Types (or from every type)
}

// NullStyle defines how nullability is rendered in SQL definitions.
type NullStyle int

const (
	// NullsNotNullOnly renders " NOT NULL" for non-nullable columns and nothing otherwise.
	NullsNotNullOnly NullStyle = iota
	// NullsExplicit renders " NULL" or " NOT NULL".
	NullsExplicit
)

// String returns the string representation of NullStyle.
func (s NullStyle) String() string {
	switch s {
	case NullsNotNullOnly:
		return "not-null-only"
	case NullsExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}
