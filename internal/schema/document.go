// Package schema loads, validates, converts and renders YAML schema
// documents that describe tables as lists of typed columns.
//
//	backend: snowflake
//	tables:
//	  - name: orders
//	    columns:
//	      - name: id
//	        type: NUMBER
//	        length: "38,0"
//	        nullable: false
//	      - name: amount
//	        basetype: NUMERIC
//
// Column keys other than name, type and basetype are passed to the
// backend as definition options.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a parsed schema file.
type Document struct {
	Backend string  `yaml:"backend,omitempty"`
	Tables  []Table `yaml:"tables"`
}

// Table is a named list of columns.
type Table struct {
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

// Column describes one column. Either Type or BaseType must be set.
type Column struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type,omitempty"`
	BaseType string         `yaml:"basetype,omitempty"`
	Options  map[string]any `yaml:",inline"`
}

// Load reads and parses a schema file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a schema document. Unknown top-level and table keys are
// rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Marshal encodes a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
