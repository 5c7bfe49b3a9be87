package datatype

import (
	"github.com/leapstack-labs/datatypes/pkg/core"
)

// Metadata keys shared with downstream consumers.
const (
	MetadataKeyBackend     = "KBC.datatype.backend"
	MetadataKeyType        = "KBC.datatype.type"
	MetadataKeyNullable    = "KBC.datatype.nullable"
	MetadataKeyBaseType    = "KBC.datatype.basetype"
	MetadataKeyLength      = "KBC.datatype.length"
	MetadataKeyDefault     = "KBC.datatype.default"
	MetadataKeyCompression = "KBC.datatype.compression"
	MetadataKeyFormat      = "KBC.datatype.format"
)

// MetadataPair is one key/value annotation of a column.
type MetadataPair struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// ColumnsSyncKeys returns the metadata keys that are synced to storage
// columns.
func ColumnsSyncKeys() []string {
	return []string{MetadataKeyNullable, MetadataKeyLength, MetadataKeyDefault}
}

// BackendMetadata returns the pair recording which backend produced def.
func BackendMetadata(def Definition) MetadataPair {
	return MetadataPair{Key: MetadataKeyBackend, Value: def.BackendName()}
}

// ToMetadata returns the ordered metadata pairs for the column.
// TYPE, NULLABLE and BASETYPE are always present; the remaining keys only
// when the field is set and non-empty.
func (c *Column) ToMetadata() []MetadataPair {
	md := []MetadataPair{
		{Key: MetadataKeyType, Value: c.typ},
		{Key: MetadataKeyNullable, Value: c.nullable},
		{Key: MetadataKeyBaseType, Value: string(c.BaseType())},
	}
	optional := []struct {
		key string
		val *string
	}{
		{MetadataKeyLength, c.length},
		{MetadataKeyDefault, c.def},
		{MetadataKeyCompression, c.compression},
		{MetadataKeyFormat, c.format},
	}
	for _, o := range optional {
		if o.val != nil && *o.val != "" {
			md = append(md, MetadataPair{Key: o.key, Value: *o.val})
		}
	}
	return md
}

// FromMetadata rebuilds a column on b from metadata pairs. When no type
// pair is present the basetype pair selects the backend's native type.
// Unknown keys, including the backend key, are ignored.
func FromMetadata(b *Backend, pairs []MetadataPair) (*Column, error) {
	var (
		typ      string
		baseType string
		opts     = Options{}
	)

	for _, p := range pairs {
		switch p.Key {
		case MetadataKeyType:
			typ, _ = p.Value.(string)
		case MetadataKeyBaseType:
			baseType, _ = p.Value.(string)
		case MetadataKeyNullable:
			opts[OptionNullable] = p.Value
		case MetadataKeyLength:
			opts[OptionLength] = p.Value
		case MetadataKeyDefault:
			opts[OptionDefault] = p.Value
		case MetadataKeyCompression:
			if b.HasEncodings() {
				opts[OptionCompression] = p.Value
			}
		case MetadataKeyFormat:
			if _, ok := b.options[OptionFormat]; ok {
				opts[OptionFormat] = p.Value
			}
		}
	}

	if typ != "" {
		return b.NewColumn(typ, opts)
	}
	if baseType == "" {
		return nil, b.invalid(ErrInvalidType, "", func(*ValidationError) {})
	}

	bt, err := core.ParseBaseType(baseType)
	if err != nil {
		return nil, err
	}
	c, err := b.canonical(bt)
	if err != nil {
		return nil, err
	}
	if _, ok := opts[OptionLength]; !ok && c.Length != "" {
		opts[OptionLength] = c.Length
	}
	return b.NewColumn(c.Type, opts)
}
