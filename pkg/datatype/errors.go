package datatype

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/datatypes/pkg/core"
)

// Construction failures. Every error returned by Backend.NewColumn wraps
// exactly one of these.
var (
	ErrInvalidType        = errors.New("invalid type")
	ErrInvalidLength      = errors.New("invalid length")
	ErrInvalidOption      = errors.New("invalid option")
	ErrInvalidCompression = errors.New("invalid compression")
)

// ErrUnknownBaseType is returned by reverse lookups for values outside the
// basetype vocabulary.
var ErrUnknownBaseType = core.ErrUnknownBaseType

// ErrBackendRequired is returned when a backend name is required but empty.
var ErrBackendRequired = errors.New("backend is required")

// ValidationError describes why a definition could not be constructed.
type ValidationError struct {
	Kind    error  // one of the Err* sentinels above
	Backend string // backend name
	Type    string // type name as supplied by the caller
	Option  string // offending option key (ErrInvalidOption)
	Value   string // offending value (length or compression)
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrInvalidType:
		return fmt.Sprintf("%s: %q is not a valid type", e.Backend, e.Type)
	case ErrInvalidLength:
		return fmt.Sprintf("%s: %q is not a valid length for %s", e.Backend, e.Value, e.Type)
	case ErrInvalidOption:
		if e.Value != "" {
			return fmt.Sprintf("%s: option %q not supported: %s", e.Backend, e.Option, e.Value)
		}
		return fmt.Sprintf("%s: option %q not supported", e.Backend, e.Option)
	case ErrInvalidCompression:
		return fmt.Sprintf("%s: compression %q is not valid for %s", e.Backend, e.Value, e.Type)
	default:
		return fmt.Sprintf("%s: %v", e.Backend, e.Kind)
	}
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// UnknownBackendError is returned when an unregistered backend is requested.
type UnknownBackendError struct {
	Name      string
	Available []string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown backend %q\nAvailable backends: %v", e.Name, e.Available)
}
