package source

import (
	"gopkg.in/yaml.v3"

	kvshape "github.com/reoring/kvshape"
)

// YAML reads a flat YAML mapping from the first document of data. Scalars
// are taken as written; null and "~" become empty text. An empty document
// yields no pairs.
func YAML(data []byte) ([]kvshape.Pair, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, formatIssue("/", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, typeIssue("/", "top-level value must be a mapping")
	}

	out := make([]kvshape.Pair, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k := resolveAlias(root.Content[i])
		v := resolveAlias(root.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return nil, typeIssue("/", "mapping key must be a scalar")
		}
		if v.Kind != yaml.ScalarNode {
			return nil, typeIssue("/"+k.Value, "nested values are not supported")
		}
		text := v.Value
		if v.Tag == "!!null" {
			text = ""
		}
		out = append(out, kvshape.Pair{Key: k.Value, Value: text})
	}
	return out, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
