package datatype

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/shopspring/decimal"
)

// IsEmpty reports whether a length is absent. Callers pass "" for absent.
func IsEmpty(length string) bool {
	return length == ""
}

// ValidateNumericLength checks a "first[,second]" specification such as a
// precision/scale pair. Every part must be numeric, the first part an integer
// in [1, firstMax] and the second at most secondMax. With firstMustBeBigger
// the second part may not exceed the first.
func ValidateNumericLength(length string, firstMax, secondMax int64, firstMustBeBigger bool) bool {
	limit := decimal.NewFromInt(secondMax)
	return validateNumericParts(length, firstMax, &limit, firstMustBeBigger)
}

// ValidateMaxLength checks that a non-empty length is a plain integer in
// [minimum, maximum].
func ValidateMaxLength(length string, maximum, minimum int64) bool {
	if IsEmpty(length) {
		return true
	}
	n, err := strconv.ParseInt(length, 10, 64)
	if err != nil {
		return false
	}
	return n >= minimum && n <= maximum
}

// CheckLength evaluates a declarative rule against a length.
func CheckLength(rule core.LengthRule, length string) bool {
	switch rule.Kind {
	case core.LengthAny:
		return true
	case core.LengthForbidden:
		return IsEmpty(length)
	case core.LengthBounded:
		return ValidateMaxLength(length, rule.Max, rule.Min)
	case core.LengthRequired:
		return !IsEmpty(length) && ValidateMaxLength(length, rule.Max, rule.Min)
	case core.LengthPrecisionScale:
		if rule.ScaleBounded {
			return ValidateNumericLength(length, rule.Max, rule.ScaleMax, rule.ScaleNotAbovePrec)
		}
		return validateNumericParts(length, rule.Max, nil, rule.ScaleNotAbovePrec)
	case core.LengthStorageWidth:
		return ValidateMaxLength(length, rule.Max, rule.Min)
	default:
		return false
	}
}

// validateNumericParts implements the precision/scale grammar. A nil
// secondMax leaves the second part unbounded.
func validateNumericParts(length string, firstMax int64, secondMax *decimal.Decimal, firstMustBeBigger bool) bool {
	if IsEmpty(length) {
		return true
	}
	parts := strings.Split(length, ",")
	if len(parts) < 1 || len(parts) > 2 {
		return false
	}

	if !isDigits(parts[0]) {
		return false
	}
	first, err := decimal.NewFromString(parts[0])
	if err != nil {
		return false
	}
	if first.Sign() <= 0 || first.GreaterThan(decimal.NewFromInt(firstMax)) {
		return false
	}
	if len(parts) == 1 {
		return true
	}

	if !isDigits(parts[1]) {
		return false
	}
	second, err := decimal.NewFromString(parts[1])
	if err != nil {
		return false
	}
	if secondMax != nil && second.GreaterThan(*secondMax) {
		return false
	}
	return !(firstMustBeBigger && second.GreaterThan(first))
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signs,
// exponents and fractions are not part of the length grammar.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
