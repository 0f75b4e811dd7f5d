package localefile

import (
	"bytes"
	"fmt"

	"locale-manager/core/tree"

	"gopkg.in/yaml.v3"
)

// YAML is the Rails-style locale codec.
type YAML struct{}

func (YAML) Format() string    { return "yaml" }
func (YAML) Extension() string { return "yml" }

// Decode parses a YAML document. Aliases and "<<" merge keys are resolved, serializer type
// tags are dropped and every mapping key is converted to its string form.
func (YAML) Decode(data []byte) (tree.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	StripTypeTags(&doc)

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return tree.Node{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 || (root.Kind == yaml.ScalarNode && root.Tag == "!!null") {
		return tree.Node{}, nil
	}

	v, err := decodeYAML(resolveAlias(root))
	if err != nil {
		return nil, err
	}
	n, ok := tree.AsNode(v)
	if !ok {
		return nil, fmt.Errorf("%w: document root is not a mapping", ErrInvalidFile)
	}
	return n, nil
}

// Encode writes n as block YAML with sorted keys and two-space indentation.
func (YAML) Encode(n tree.Node) ([]byte, error) {
	root, err := encodeYAML(n)
	if err != nil {
		return nil, err
	}
	StripTypeTags(root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func decodeYAML(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeYAML(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrInvalidFile, n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: line %d: unsupported node", ErrInvalidFile, n.Line)
	}
}

// decodeMapping applies merge keys first so explicit keys of the mapping win.
func decodeMapping(n *yaml.Node) (tree.Node, error) {
	out := tree.Node{}
	var explicit [][2]*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && (k.Tag == "!!merge" || k.Value == "<<") {
			if err := mergeInto(out, v); err != nil {
				return nil, err
			}
			continue
		}
		explicit = append(explicit, [2]*yaml.Node{k, v})
	}

	for _, pair := range explicit {
		k := resolveAlias(pair[0])
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: mapping key is not a scalar", ErrInvalidFile, k.Line)
		}
		v, err := decodeYAML(pair[1])
		if err != nil {
			return nil, err
		}
		out[k.Value] = v
	}
	return out, nil
}

func mergeInto(out tree.Node, v *yaml.Node) error {
	v = resolveAlias(v)
	switch v.Kind {
	case yaml.MappingNode:
		merged, err := decodeMapping(v)
		if err != nil {
			return err
		}
		for k, val := range merged {
			if _, ok := out[k]; !ok {
				out[k] = val
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range v.Content {
			if err := mergeInto(out, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: line %d: merge value is not a mapping", ErrInvalidFile, v.Line)
	}
}

func encodeYAML(v any) (*yaml.Node, error) {
	if n, ok := tree.AsNode(v); ok {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range tree.SortedKeys(n) {
			child, err := encodeYAML(n[k])
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, child)
		}
		return m, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode leaf: %w", err)
	}
	return node, nil
}
