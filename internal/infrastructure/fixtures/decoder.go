// Package fixtures loads the dataset records the prompts run against.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for fixture files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported fixture format")

// Decoder decodes a fixture document into v.
type Decoder interface {
	Decode(r io.Reader, v any) error
}

// ForFormat returns the decoder for the given format.
// Supported formats: "yaml", "json".
func ForFormat(format string) (Decoder, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return &YAMLDecoder{}, nil
	case "json":
		return &JSONDecoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ForFile returns the decoder based on file extension.
func ForFile(filename string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filename)
	}
	return ForFormat(ext)
}

// YAMLDecoder decodes YAML, rejecting fields the records don't declare.
type YAMLDecoder struct{}

// Decode reads a single YAML document from r.
func (d *YAMLDecoder) Decode(r io.Reader, v any) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("parsing YAML: empty document")
		}
		return fmt.Errorf("parsing YAML: %w", err)
	}
	return nil
}

// JSONDecoder decodes JSON, rejecting fields the records don't declare.
type JSONDecoder struct{}

// Decode reads a single JSON value from r.
func (d *JSONDecoder) Decode(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}
