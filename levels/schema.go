package levels

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidDocument wraps every parse or schema failure.
var ErrInvalidDocument = errors.New("levels: invalid document")

//go:embed level.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func levelSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("level.schema.json", schemaSource)
	})
	return schema, schemaErr
}

// Validate checks raw JSON against the level schema.
func Validate(data []byte) error {
	s, err := levelSchema()
	if err != nil {
		return fmt.Errorf("levels: compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// Parse validates data and decodes it into a normalized Document.
func Parse(data []byte) (*Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc.Normalize()
	return &doc, nil
}

// Encode returns the canonical JSON encoding of doc.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("levels: encode: %w", err)
	}
	return data, nil
}
