package schema

import (
	"gopkg.in/yaml.v3"
)

// yamlNode adapts a *yaml.Node into the Node interface. yaml.v3 already
// tracks line/column per node and preserves mapping key order, which is
// exactly the contract Node needs - the reason this package reaches for
// yaml.v3 rather than hand-rolling a parser the way the original tool's
// runtime helpers did.
type yamlNode struct {
	n *yaml.Node
}

// Parse reads a YAML (or JSON, which is a YAML subset) document and
// returns its root as a Node.
func Parse(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	root := &doc
	// A decoded document's top-level node is a DocumentNode wrapping the
	// real root; unwrap it so callers always see the content node.
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	return WrapNode(root), nil
}

// WrapNode adapts an already-parsed *yaml.Node, for callers that already
// hold one. Parse and the yamlNode accessors (Get, Pairs, Items) use it to
// wrap every node they return.
func WrapNode(n *yaml.Node) Node {
	if n == nil {
		return nil
	}
	return &yamlNode{n: n}
}

func (y *yamlNode) Kind() Kind {
	switch y.n.Kind {
	case yaml.MappingNode:
		return KindMapping
	case yaml.SequenceNode:
		return KindSequence
	case yaml.ScalarNode:
		if y.n.Tag == "!!null" {
			return KindNull
		}
		return KindScalar
	default:
		return KindNull
	}
}

func (y *yamlNode) Line() int   { return y.n.Line }
func (y *yamlNode) Column() int { return y.n.Column }

func (y *yamlNode) Scalar() string {
	if y.n.Kind != yaml.ScalarNode {
		return ""
	}
	return y.n.Value
}

func (y *yamlNode) Get(key string) (Node, bool) {
	if y.n.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(y.n.Content); i += 2 {
		if y.n.Content[i].Value == key {
			return WrapNode(y.n.Content[i+1]), true
		}
	}
	return nil, false
}

func (y *yamlNode) Pairs() []Pair {
	if y.n.Kind != yaml.MappingNode {
		return nil
	}
	out := make([]Pair, 0, len(y.n.Content)/2)
	for i := 0; i+1 < len(y.n.Content); i += 2 {
		out = append(out, Pair{Key: y.n.Content[i].Value, Value: WrapNode(y.n.Content[i+1])})
	}
	return out
}

func (y *yamlNode) Items() []Node {
	if y.n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]Node, 0, len(y.n.Content))
	for _, c := range y.n.Content {
		out = append(out, WrapNode(c))
	}
	return out
}

// Decode reports the node's fully-typed value (string, bool, int, float64,
// nil, []any, map[string]any), using yaml.v3's own tag-driven scalar
// resolution rather than re-implementing YAML's type inference.
func (y *yamlNode) Decode() (any, error) {
	var v any
	if err := y.n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (y *yamlNode) Len() int {
	switch y.n.Kind {
	case yaml.MappingNode:
		return len(y.n.Content) / 2
	case yaml.SequenceNode:
		return len(y.n.Content)
	default:
		return 0
	}
}
