package datatype

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classifier maps a canonical (upper-cased) type name to a basetype.
type Classifier func(typ string) core.BaseType

// Backend is the runtime form of a core.BackendConfig. It validates
// constructor input and owns the lookup tables derived from the config.
// A Backend is immutable after Build and safe for concurrent use.
type Backend struct {
	cfg *core.BackendConfig

	allowed   map[string]struct{}
	options   map[string]struct{}
	encodings map[string]map[string]struct{} // encoding -> permitted types
	classify  Classifier
}

// Builder assembles a Backend.
type Builder struct {
	backend *Backend
}

// New creates a builder from a pure data configuration.
func New(cfg *core.BackendConfig) *Builder {
	b := &Backend{
		cfg:       cfg,
		allowed:   make(map[string]struct{}, len(cfg.Types)),
		options:   make(map[string]struct{}),
		encodings: make(map[string]map[string]struct{}, len(cfg.Encodings)),
	}

	for _, t := range cfg.Types {
		b.allowed[normalizeType(t)] = struct{}{}
	}
	for _, o := range commonOptions {
		b.options[o] = struct{}{}
	}
	for _, o := range cfg.ExtraOptions {
		b.options[o] = struct{}{}
	}
	if cfg.Encodings != nil {
		b.options[OptionCompression] = struct{}{}
	}

	for _, enc := range cfg.Encodings {
		types := enc.Types
		if types == nil {
			types = cfg.Types
		}
		permitted := make(map[string]struct{}, len(types))
		for _, t := range types {
			permitted[normalizeType(t)] = struct{}{}
		}
		for _, t := range enc.Except {
			delete(permitted, normalizeType(t))
		}
		b.encodings[normalizeType(enc.Name)] = permitted
	}

	return &Builder{backend: b}
}

// Classifier overrides the table-driven basetype classification.
func (b *Builder) Classifier(fn Classifier) *Builder {
	b.backend.classify = fn
	return b
}

// Build returns the configured backend.
func (b *Builder) Build() *Backend {
	if b.backend.classify == nil {
		b.backend.classify = b.backend.classifyByTable
	}
	return b.backend
}

// normalizeType canonicalizes a type name for lookups and storage.
// Casers are not safe for concurrent use, so one is created per call.
func normalizeType(typ string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(typ))
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return b.cfg.Name
}

// AcceptsAnyType reports whether the backend has no type allow-list.
func (b *Backend) AcceptsAnyType() bool {
	return len(b.cfg.Types) == 0
}

// Types returns the type allow-list in declaration order.
func (b *Backend) Types() []string {
	return slices.Clone(b.cfg.Types)
}

// IsAllowed reports whether typ is an accepted type name (case-insensitive).
func (b *Backend) IsAllowed(typ string) bool {
	t := normalizeType(typ)
	if t == "" {
		return false
	}
	if b.AcceptsAnyType() {
		return true
	}
	_, ok := b.allowed[t]
	return ok
}

// LengthRule returns the length grammar for typ.
func (b *Backend) LengthRule(typ string) core.LengthRule {
	if rule, ok := b.cfg.LengthRules[normalizeType(typ)]; ok {
		return rule
	}
	return b.cfg.DefaultLengthRule
}

// BaseTypeOf classifies typ. It is total and defaults to STRING.
func (b *Backend) BaseTypeOf(typ string) core.BaseType {
	return b.classify(normalizeType(typ))
}

func (b *Backend) classifyByTable(typ string) core.BaseType {
	if bt, ok := b.cfg.BaseTypes[typ]; ok {
		return bt
	}
	return core.BaseTypeString
}

// HasEncodings reports whether the backend accepts the compression option.
func (b *Backend) HasEncodings() bool {
	return b.cfg.Encodings != nil
}

// Encodings returns every encoding name in declaration order.
func (b *Backend) Encodings() []string {
	names := make([]string, 0, len(b.cfg.Encodings))
	for _, enc := range b.cfg.Encodings {
		names = append(names, normalizeType(enc.Name))
	}
	return names
}

// EncodingsFor returns the encodings permitted for typ in declaration order.
func (b *Backend) EncodingsFor(typ string) []string {
	t := normalizeType(typ)
	var names []string
	for _, enc := range b.Encodings() {
		if _, ok := b.encodings[enc][t]; ok {
			names = append(names, enc)
		}
	}
	return names
}

// IsEncodingAllowed reports whether encoding may be used with typ.
func (b *Backend) IsEncodingAllowed(typ, encoding string) bool {
	permitted, ok := b.encodings[normalizeType(encoding)]
	if !ok {
		return false
	}
	_, ok = permitted[normalizeType(typ)]
	return ok
}

// OptionKeys returns the accepted option keys, sorted.
func (b *Backend) OptionKeys() []string {
	keys := make([]string, 0, len(b.options))
	for k := range b.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StructuredLength reports whether length may be given as a map.
func (b *Backend) StructuredLength() bool {
	return b.cfg.StructuredLength
}

// NewColumn validates typ and opts and returns an immutable definition.
// Checks run in order: type, option keys, length, compression.
func (b *Backend) NewColumn(typ string, opts Options) (*Column, error) {
	t := normalizeType(typ)
	if !b.IsAllowed(t) {
		return nil, b.invalid(ErrInvalidType, typ, func(e *ValidationError) {})
	}

	if key, ok := firstUnknownKey(opts, b.options); ok {
		return nil, b.invalid(ErrInvalidOption, t, func(e *ValidationError) { e.Option = key })
	}

	vals, err := decodeOptions(opts)
	if err != nil {
		return nil, b.invalid(ErrInvalidOption, t, func(e *ValidationError) { e.Value = err.Error() })
	}

	length, err := b.resolveLength(t, vals.Length)
	if err != nil {
		return nil, err
	}
	var lengthText string
	if length != nil {
		lengthText = *length
	}
	if !CheckLength(b.LengthRule(t), lengthText) {
		return nil, b.invalid(ErrInvalidLength, t, func(e *ValidationError) { e.Value = lengthText })
	}

	var compression *string
	if vals.Compression != nil && *vals.Compression != "" {
		enc := normalizeType(*vals.Compression)
		if !b.IsEncodingAllowed(t, enc) {
			return nil, b.invalid(ErrInvalidCompression, t, func(e *ValidationError) { e.Value = *vals.Compression })
		}
		compression = &enc
	}

	nullable := true
	if vals.Nullable != nil {
		nullable = *vals.Nullable
	}

	return &Column{
		backend:     b,
		typ:         t,
		length:      length,
		nullable:    nullable,
		def:         vals.Default,
		compression: compression,
		format:      vals.Format,
	}, nil
}

// resolveLength turns the raw length option into text. Maps are accepted
// only by backends with structured length.
func (b *Backend) resolveLength(typ string, raw any) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	if m, ok := raw.(map[string]any); ok {
		if !b.cfg.StructuredLength {
			return nil, b.invalid(ErrInvalidLength, typ, func(e *ValidationError) { e.Value = fmt.Sprint(m) })
		}
		s, key, err := collapseStructuredLength(m)
		if err != nil {
			return nil, b.invalid(ErrInvalidOption, typ, func(e *ValidationError) {
				e.Option = key
				if key == OptionLength {
					e.Value = err.Error()
				}
			})
		}
		return s, nil
	}

	s, err := lengthText(raw)
	if err != nil {
		return nil, b.invalid(ErrInvalidLength, typ, func(e *ValidationError) { e.Value = fmt.Sprint(raw) })
	}
	return &s, nil
}

func (b *Backend) invalid(kind error, typ string, fill func(*ValidationError)) error {
	e := &ValidationError{Kind: kind, Backend: b.cfg.Name, Type: typ}
	fill(e)
	return e
}

// TypeByBaseType returns the backend's native type name for bt.
func (b *Backend) TypeByBaseType(bt core.BaseType) (string, error) {
	c, err := b.canonical(bt)
	if err != nil {
		return "", err
	}
	return c.Type, nil
}

// DefinitionForBaseType returns a default-configured definition for bt.
func (b *Backend) DefinitionForBaseType(bt core.BaseType) (*Column, error) {
	c, err := b.canonical(bt)
	if err != nil {
		return nil, err
	}
	opts := Options{}
	if c.Length != "" {
		opts[OptionLength] = c.Length
	}
	return b.NewColumn(c.Type, opts)
}

func (b *Backend) canonical(bt core.BaseType) (core.CanonicalType, error) {
	if !bt.IsValid() {
		return core.CanonicalType{}, fmt.Errorf("%w: %q", ErrUnknownBaseType, string(bt))
	}
	c, ok := b.cfg.Canonical[bt]
	if !ok {
		return core.CanonicalType{}, fmt.Errorf("%s: no native type for %s: %w", b.cfg.Name, bt, ErrUnknownBaseType)
	}
	return c, nil
}
