// Package export renders a flattened mapping back into nested YAML.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"yamlsimple/internal/flat"
	"yamlsimple/internal/keypath"
)

// Node builds a YAML mapping node from m. Entries that have entries below
// them become nested mappings; every other value becomes a single-quoted
// string scalar so nothing is reinterpreted as a number or boolean.
func Node(m *flat.Mapping) *yaml.Node {
	parents := make(map[string]struct{})

	for _, k := range m.Keys() {
		p := split(k)
		for i := 1; i < p.Len(); i++ {
			parents[strings.Join(p.Segments[:i], keypath.Separator)] = struct{}{}
		}
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	mappings := map[string]*yaml.Node{"": root}

	// mappingFor returns the mapping node for path, creating it and any
	// missing ancestors in place.
	var mappingFor func(p keypath.Path) *yaml.Node

	mappingFor = func(p keypath.Path) *yaml.Node {
		key := p.String()
		if n, ok := mappings[key]; ok {
			return n
		}

		parent := mappingFor(p.Parent())
		n := &yaml.Node{Kind: yaml.MappingNode}
		parent.Content = append(parent.Content, keyNode(p.Leaf()), n)
		mappings[key] = n

		return n
	}

	for k, v := range m.All() {
		p := split(k)

		if _, ok := parents[k]; ok {
			mappingFor(p)
			continue
		}

		parent := mappingFor(p.Parent())
		parent.Content = append(parent.Content, keyNode(p.Leaf()), &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.SingleQuotedStyle,
			Value: v,
		})
	}

	return root
}

// ToYAML encodes m as nested YAML indented by flat.IndentStep columns, the
// same layout flat.Parse reads.
func ToYAML(m *flat.Mapping) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(flat.IndentStep)

	if err := enc.Encode(Node(m)); err != nil {
		return nil, fmt.Errorf("failed to encode mapping: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode mapping: %w", err)
	}

	return buf.Bytes(), nil
}

// split does not validate: a key line with nothing before its ":" yields
// empty segments, which are exported as empty keys.
func split(k string) keypath.Path {
	return keypath.Path{Segments: strings.Split(k, keypath.Separator)}
}

func keyNode(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
