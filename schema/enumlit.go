package schema

import (
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// decoder is implemented by Node backends (yamlNode) that can resolve a
// scalar to its fully-typed value instead of a raw string. ToValue falls
// back to a string-preserving walk for any Node that doesn't implement it.
type decoder interface {
	Decode() (any, error)
}

// ToValue converts a Node into a plain Go value tree (nil, bool, int,
// float64, string, []any, map[string]any) suitable for JSON encoding. This is the
// bridge between the document tree and the literal embedded in generated
// code for an "enum" property (spec.md §4.4.8).
func ToValue(n Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	if d, ok := n.(decoder); ok {
		return d.Decode()
	}
	switch n.Kind() {
	case KindNull:
		return nil, nil
	case KindScalar:
		return n.Scalar(), nil
	case KindSequence:
		items := n.Items()
		out := make([]any, 0, len(items))
		for _, it := range items {
			v, err := ToValue(it)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case KindMapping:
		pairs := n.Pairs()
		out := make(map[string]any, len(pairs))
		for _, p := range pairs {
			v, err := ToValue(p.Value)
			if err != nil {
				return nil, err
			}
			out[p.Key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("schema: unhandled node kind %d", n.Kind())
	}
}

// EncodeLiteral renders a Node's value as a Go string literal containing
// its canonical JSON form, ready to be embedded directly in emitted source
// (the Go-idiomatic replacement for the original tool's raw-string YAML
// literal embedding). The runtime helper library re-parses this text and
// compares it against the node under validation using the same notion of
// structural equality as Equal.
func EncodeLiteral(n Node) (string, error) {
	v, err := ToValue(n)
	if err != nil {
		return "", err
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return "", err
	}
	return strconv.Quote(string(b)), nil
}
