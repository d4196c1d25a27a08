package keymap

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/translit"
)

func decodeYAML(data []byte) (*Keymap, error) {
	// the node tree keeps mapping order and the literal text of every key
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty keymap")
	}
	top := resolveAlias(root.Content[0])
	if err := validate(nodeDocument(top)); err != nil {
		return nil, err
	}
	km := &Keymap{}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], resolveAlias(top.Content[i+1])
		switch key.Value {
		case "name":
			km.Name = val.Value
		case "substitutions":
			km.Substitutions = yamlEntries(val)
		case "cancellations":
			km.Cancellations = yamlEntries(val)
		}
	}
	return km, nil
}

// nodeDocument converts a node tree into a generic document for schema
// validation. Keys and scalars are taken literally as strings, so a trigger
// like 12 or yes stays a trigger; only null scalars become nil.
func nodeDocument(n *yaml.Node) any {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		doc := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			doc[resolveAlias(n.Content[i]).Value] = nodeDocument(n.Content[i+1])
		}
		return doc
	case yaml.SequenceNode:
		doc := make([]any, len(n.Content))
		for i, c := range n.Content {
			doc[i] = nodeDocument(c)
		}
		return doc
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return n.Value
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlEntries(m *yaml.Node) []translit.Entry {
	ee := make([]translit.Entry, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		ee = append(ee, translit.Entry{
			Trigger: resolveAlias(m.Content[i]).Value,
			Output:  resolveAlias(m.Content[i+1]).Value,
		})
	}
	return ee
}

// EncodeYAML writes km in YAML format, keeping entry order.
func EncodeYAML(w io.Writer, km *Keymap) error {
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, yamlString("name"), yamlString(km.Name))
	top.Content = append(top.Content, yamlString("substitutions"), yamlMapping(km.Substitutions))
	if len(km.Cancellations) > 0 {
		top.Content = append(top.Content, yamlString("cancellations"), yamlMapping(km.Cancellations))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		return fmt.Errorf("encoding keymap %q: %w", km.Name, err)
	}
	return enc.Close()
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlMapping(ee []translit.Entry) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range ee {
		m.Content = append(m.Content, yamlString(e.Trigger), yamlString(e.Output))
	}
	return m
}
