// Package render serializes generated templates into their output formats
// and persists them: one file per entity in sheets shape, one merged file
// in single shape.
package render

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/weave"
)

// MarshalYAML renders a template as block-style YAML, preserving entry
// order byte-for-byte across runs. Enumeration placeholders with a literal
// value set carry the allowed values as a line comment.
func MarshalYAML(t *weave.Template) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(t)); err != nil {
		return nil, errors.Wrap(err, "encoding template as YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "closing YAML encoder")
	}
	return buf.Bytes(), nil
}

// yamlNode converts a placeholder to its yaml.Node representation.
func yamlNode(ph weave.Placeholder) *yaml.Node {
	switch v := ph.(type) {
	case weave.Token:
		return scalarNode(string(v))

	case weave.Text:
		return scalarNode(string(v))

	case weave.EmptyList:
		return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

	case weave.EmptyMap:
		return &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}

	case weave.EnumChoice:
		node := scalarNode("<" + v.Name + ">")
		if len(v.Values) > 0 {
			// Informative only, never parsed back
			node.LineComment = "one of: " + strings.Join(v.Values, " | ")
		}
		return node

	case *weave.Template:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range v.Entries {
			node.Content = append(node.Content, scalarNode(e.Key), yamlNode(e.Value))
		}
		return node
	}

	// All placeholder variants are handled above
	return scalarNode("")
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
