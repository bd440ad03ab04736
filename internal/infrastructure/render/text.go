package render

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// renderText writes v as an unquoted outline. Values go through the YAML
// node tree so ordered maps keep their key order.
func (r *Renderer) renderText(w io.Writer, v any) error {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return fmt.Errorf("encoding text: %w", err)
	}

	t := &textWriter{indent: strings.Repeat(" ", max(r.indent, 1))}
	t.node(&node, 0)
	if _, err := io.WriteString(w, t.b.String()); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}

type textWriter struct {
	b      strings.Builder
	indent string
}

func (t *textWriter) line(depth int, s string) {
	t.b.WriteString(strings.Repeat(t.indent, depth))
	t.b.WriteString(s)
	t.b.WriteByte('\n')
}

func (t *textWriter) node(n *yaml.Node, depth int) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			t.node(c, depth)
		}
	case yaml.AliasNode:
		t.node(n.Alias, depth)
	case yaml.ScalarNode:
		t.line(depth, scalar(n))
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			t.line(depth, "(none)")
			return
		}
		for _, item := range n.Content {
			if item.Kind == yaml.ScalarNode {
				t.line(depth, "- "+scalar(item))
				continue
			}
			t.line(depth, "-")
			t.node(item, depth+1)
		}
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			t.line(depth, "(none)")
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if inline(value) {
				t.line(depth, key.Value+": "+inlineValue(value))
				continue
			}
			t.line(depth, key.Value+":")
			t.node(value, depth+1)
		}
	}
}

// inline reports whether a mapping value fits on its key's line.
func inline(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode:
		return true
	case yaml.SequenceNode, yaml.MappingNode:
		return len(n.Content) == 0
	case yaml.AliasNode:
		return inline(n.Alias)
	default:
		return false
	}
}

func inlineValue(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.AliasNode:
		return inlineValue(n.Alias)
	default:
		return "(none)"
	}
}

func scalar(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return "-"
	}
	return n.Value
}
