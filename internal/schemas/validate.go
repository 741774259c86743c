// Package schemas validates JSON documents against JSON Schema definitions.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// SchemaLoadError means the schema itself could not be compiled.
type SchemaLoadError struct {
	Name  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Name, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema is a compiled JSON Schema, safe for concurrent use.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

func Compile(name, content string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Name: name, Cause: err}
	}
	return &Schema{name: name, schema: s}, nil
}

func MustCompile(name, content string) *Schema {
	s, err := Compile(name, content)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string {
	return s.name
}

// ValidateBytes validates raw JSON. Malformed JSON is reported as a
// ValidationError on the root.
func (s *Schema) ValidateBytes(doc []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ValidateValue marshals v and validates the result.
func (s *Schema) ValidateValue(v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", s.name, err)
	}
	return s.ValidateBytes(doc)
}
