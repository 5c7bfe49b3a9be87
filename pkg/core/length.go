package core

import "fmt"

// LengthKind selects the grammar a length specification is checked against.
type LengthKind int

const (
	// LengthForbidden means the type takes no length; only an empty value passes.
	LengthForbidden LengthKind = iota
	// LengthAny disables checking (generic backend).
	LengthAny
	// LengthBounded is an optional plain integer in [Min, Max].
	LengthBounded
	// LengthRequired is a mandatory plain integer in [Min, Max].
	LengthRequired
	// LengthPrecisionScale is an optional "precision[,scale]" pair.
	LengthPrecisionScale
	// LengthStorageWidth is an optional fixed byte width that is never rendered.
	LengthStorageWidth
)

// String returns the string representation of LengthKind.
func (k LengthKind) String() string {
	switch k {
	case LengthForbidden:
		return "forbidden"
	case LengthAny:
		return "any"
	case LengthBounded:
		return "bounded"
	case LengthRequired:
		return "required"
	case LengthPrecisionScale:
		return "precision-scale"
	case LengthStorageWidth:
		return "storage-width"
	default:
		return "unknown"
	}
}

// LengthRule is the declarative grammar for one type's length.
// This is pure data; pkg/datatype evaluates it.
type LengthRule struct {
	Kind LengthKind

	// Bounds for LengthBounded and LengthRequired, and the precision bound
	// (Max) for LengthPrecisionScale. Min == Max is the width for
	// LengthStorageWidth.
	Min int64
	Max int64

	// Scale settings for LengthPrecisionScale.
	ScaleMax          int64
	ScaleBounded      bool // when false the scale only has to be numeric
	ScaleNotAbovePrec bool // scale must not exceed precision
}

// Forbidden returns a rule that only accepts an empty length.
func Forbidden() LengthRule {
	return LengthRule{Kind: LengthForbidden}
}

// Unchecked returns a rule that accepts any length.
func Unchecked() LengthRule {
	return LengthRule{Kind: LengthAny}
}

// Bounded returns a rule for an optional integer in [minimum, maximum].
func Bounded(minimum, maximum int64) LengthRule {
	return LengthRule{Kind: LengthBounded, Min: minimum, Max: maximum}
}

// Required returns a rule for a mandatory integer in [minimum, maximum].
func Required(minimum, maximum int64) LengthRule {
	return LengthRule{Kind: LengthRequired, Min: minimum, Max: maximum}
}

// PrecisionScale returns a rule for "precision[,scale]" where the scale is
// bounded by scaleMax and by the precision itself.
func PrecisionScale(precisionMax, scaleMax int64) LengthRule {
	return LengthRule{
		Kind:              LengthPrecisionScale,
		Min:               1,
		Max:               precisionMax,
		ScaleMax:          scaleMax,
		ScaleBounded:      true,
		ScaleNotAbovePrec: true,
	}
}

// Precision returns a rule for "precision[,scale]" with an unbounded,
// numeric-only scale.
func Precision(precisionMax int64) LengthRule {
	return LengthRule{Kind: LengthPrecisionScale, Min: 1, Max: precisionMax}
}

// StorageWidth returns a rule for a fixed byte width.
func StorageWidth(width int64) LengthRule {
	return LengthRule{Kind: LengthStorageWidth, Min: width, Max: width}
}

// Rendered reports whether a length matching this rule appears in SQL.
func (r LengthRule) Rendered() bool {
	return r.Kind != LengthStorageWidth
}

// Describe returns a short human readable form of the rule.
func (r LengthRule) Describe() string {
	switch r.Kind {
	case LengthForbidden:
		return "none"
	case LengthAny:
		return "any"
	case LengthBounded:
		return fmt.Sprintf("optional, %d..%d", r.Min, r.Max)
	case LengthRequired:
		return fmt.Sprintf("required, %d..%d", r.Min, r.Max)
	case LengthPrecisionScale:
		if !r.ScaleBounded {
			return fmt.Sprintf("optional, precision 1..%d[,scale]", r.Max)
		}
		return fmt.Sprintf("optional, precision 1..%d[,scale 0..%d]", r.Max, r.ScaleMax)
	case LengthStorageWidth:
		return fmt.Sprintf("optional, width %d", r.Min)
	default:
		return "unknown"
	}
}
