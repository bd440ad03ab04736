// Package render writes prompt results as JSON, YAML or plain text.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Renderer writes values in one output format.
type Renderer struct {
	format string
	indent int
}

// New creates a renderer for format with the given indent width.
func New(format string, indent int) (*Renderer, error) {
	format = strings.ToLower(format)
	switch format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	if indent < 0 {
		return nil, fmt.Errorf("negative indent: %d", indent)
	}
	return &Renderer{format: format, indent: indent}, nil
}

// Format returns the renderer's output format.
func (r *Renderer) Format() string {
	return r.format
}

// Render writes v to w followed by a newline.
func (r *Renderer) Render(w io.Writer, v any) error {
	switch r.format {
	case FormatYAML:
		return r.renderYAML(w, v)
	case FormatText:
		return r.renderText(w, v)
	default:
		return r.renderJSON(w, v)
	}
}

func (r *Renderer) renderJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	if r.indent == 0 {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", r.indent))
	}
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

func (r *Renderer) renderYAML(w io.Writer, v any) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(max(r.indent, 2))
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return nil
}
