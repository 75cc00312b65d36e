package schema

// Kind classifies a Node the way the compiler needs to dispatch on it:
// scalar leaves, ordered sequences, and key-ordered mappings (spec.md §4.3).
// A document built from a YAML or JSON source never needs anything finer
// than this.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// Pair is one entry of a mapping Node, in document order.
type Pair struct {
	Key   string
	Value Node
}

// Node is the abstract view of a schema document the rest of the compiler
// is written against (spec.md §4.3). This package's yamlNode is the only
// implementation shipped today, but property processors and the definition
// table never see past this interface, so a JSON-backed implementation
// could be dropped in without touching them.
type Node interface {
	// Kind classifies this node.
	Kind() Kind

	// Line and Column report the node's 1-based source position, for
	// diagnostics. Synthetic nodes (e.g. an expanded $ref target reached
	// through a definition) report the position of their origin in the
	// source document, not of the reference site.
	Line() int
	Column() int

	// Scalar returns the raw textual content of a scalar node, or "" for
	// any other Kind.
	Scalar() string

	// Get looks up a key in a mapping node. ok is false if this node is
	// not a mapping or the key is absent.
	Get(key string) (Node, bool)

	// Pairs returns a mapping node's entries in document order. Returns
	// nil for any other Kind.
	Pairs() []Pair

	// Items returns a sequence node's elements in document order. Returns
	// nil for any other Kind.
	Items() []Node

	// Len reports the number of entries (mapping) or elements (sequence).
	// Returns 0 for any other Kind.
	Len() int
}
