package datatype

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// Options is the raw option bag passed to a constructor.
// Recognized keys are length, nullable and default plus the backend's
// extra options (compression, format). Values are weakly typed so that
// options decoded from YAML, JSON or stored metadata can be passed as-is.
type Options map[string]any

// Option keys.
const (
	OptionLength      = "length"
	OptionNullable    = "nullable"
	OptionDefault     = "default"
	OptionCompression = "compression"
	OptionFormat      = "format"
)

// Structured length keys.
const (
	LengthCharacterMaximum = "character_maximum"
	LengthNumericPrecision = "numeric_precision"
	LengthNumericScale     = "numeric_scale"
)

var commonOptions = []string{OptionLength, OptionNullable, OptionDefault}

// optionValues is the decoded form of Options.
// Pointer fields stay nil for absent keys and nil values.
type optionValues struct {
	Length      any     `mapstructure:"length"`
	Nullable    *bool   `mapstructure:"nullable"`
	Default     *string `mapstructure:"default"`
	Compression *string `mapstructure:"compression"`
	Format      *string `mapstructure:"format"`
}

// structuredLength is the map form of the length option.
type structuredLength struct {
	CharacterMaximum *string `mapstructure:"character_maximum"`
	NumericPrecision *string `mapstructure:"numeric_precision"`
	NumericScale     *string `mapstructure:"numeric_scale"`
}

// firstUnknownKey returns the lexicographically first key of m that is not
// in allowed.
func firstUnknownKey[V any](m map[string]V, allowed map[string]struct{}) (string, bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if _, ok := allowed[k]; !ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Strings(keys)
	return keys[0], true
}

// weakDecode decodes input into result, converting between scalar kinds.
func weakDecode(input, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func decodeOptions(opts Options) (optionValues, error) {
	var v optionValues
	if len(opts) == 0 {
		return v, nil
	}
	if err := weakDecode(map[string]any(opts), &v); err != nil {
		return v, err
	}
	return v, nil
}

// lengthText converts a scalar length value (string or number) to text.
func lengthText(raw any) (string, error) {
	var s string
	if err := weakDecode(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// collapseStructuredLength turns the map form of a length into the textual
// grammar: character_maximum wins, then "precision,scale", then precision.
func collapseStructuredLength(m map[string]any) (*string, string, error) {
	allowed := map[string]struct{}{
		LengthCharacterMaximum: {},
		LengthNumericPrecision: {},
		LengthNumericScale:     {},
	}
	if key, ok := firstUnknownKey(m, allowed); ok {
		return nil, key, fmt.Errorf("length option %q not supported", key)
	}

	var sl structuredLength
	if err := weakDecode(m, &sl); err != nil {
		return nil, OptionLength, err
	}

	switch {
	case sl.CharacterMaximum != nil:
		return sl.CharacterMaximum, "", nil
	case sl.NumericPrecision != nil && sl.NumericScale != nil:
		s := *sl.NumericPrecision + "," + *sl.NumericScale
		return &s, "", nil
	default:
		return sl.NumericPrecision, "", nil
	}
}
