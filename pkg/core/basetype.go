package core

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// BaseType
// =============================================================================

// BaseType is a portable, backend-independent classification of a column type.
type BaseType string

// The closed set of basetypes.
const (
	BaseTypeString    BaseType = "STRING"
	BaseTypeInteger   BaseType = "INTEGER"
	BaseTypeNumeric   BaseType = "NUMERIC"
	BaseTypeFloat     BaseType = "FLOAT"
	BaseTypeBoolean   BaseType = "BOOLEAN"
	BaseTypeDate      BaseType = "DATE"
	BaseTypeTimestamp BaseType = "TIMESTAMP"
)

// ErrUnknownBaseType is returned when a string does not name a basetype.
var ErrUnknownBaseType = errors.New("unknown basetype")

// AllBaseTypes returns every basetype in declaration order.
func AllBaseTypes() []BaseType {
	return []BaseType{
		BaseTypeString,
		BaseTypeInteger,
		BaseTypeNumeric,
		BaseTypeFloat,
		BaseTypeBoolean,
		BaseTypeDate,
		BaseTypeTimestamp,
	}
}

// String returns the basetype name.
func (b BaseType) String() string {
	return string(b)
}

// IsValid reports whether b is one of the seven basetypes.
func (b BaseType) IsValid() bool {
	switch b {
	case BaseTypeString, BaseTypeInteger, BaseTypeNumeric, BaseTypeFloat,
		BaseTypeBoolean, BaseTypeDate, BaseTypeTimestamp:
		return true
	default:
		return false
	}
}

// ParseBaseType converts a case-insensitive name to a BaseType.
func ParseBaseType(s string) (BaseType, error) {
	b := BaseType(strings.ToUpper(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBaseType, s)
	}
	return b, nil
}
