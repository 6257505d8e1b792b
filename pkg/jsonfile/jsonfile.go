// Package jsonfile reads small JSON documents from disk and checks them
// against an embedded JSON Schema before decoding.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalid marks documents that are not valid JSON or violate their schema.
var ErrInvalid = errors.New("invalid json document")

// Schema is a compiled JSON Schema.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// CompileSchema compiles an inline schema document registered under name.
func CompileSchema(name, source string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, strings.NewReader(source)); err != nil {
		return nil, fmt.Errorf("add schema resource %s: %w", name, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompileSchema is CompileSchema for package-level schemas known to be valid.
func MustCompileSchema(name, source string) *Schema {
	schema, err := CompileSchema(name, source)
	if err != nil {
		panic(err)
	}
	return schema
}

// Read loads path, validates it against schema and decodes it into v.
// Filesystem errors are returned wrapped as-is; content problems wrap ErrInvalid.
func Read(path string, schema *Schema, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, schema, v)
}

// Decode validates data against schema and decodes it into v.
func Decode(data []byte, schema *Schema, v any) error {
	value, err := decodeStrictJSON(data)
	if err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalid, err)
	}

	if schema != nil {
		if err := schema.compiled.Validate(value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, schema.name, err)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: unmarshal: %v", ErrInvalid, err)
	}
	return nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("document contains trailing content")
	}

	return value, nil
}
