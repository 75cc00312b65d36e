package compiler

import (
	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// typeResult is the outcome of reading a "type" property value (spec.md
// §4.5): the TypeSet it populates, the deduplicated, order-preserving
// list of type spellings used to render the emitted disjunction and its
// diagnostic text, and any schema-compile-time diagnostics.
type typeResult struct {
	Set    schema.TypeSet
	Names  []string
	Errata diagnostics.Errata
}

// processType reads a "type" sub-value: a single type name, or a
// sequence of type names. Neither shape is itself an error; an
// unrecognized name is. Duplicate names warn but are tolerated.
func processType(value schema.Node) typeResult {
	var res typeResult
	seen := map[string]bool{}

	handle := func(n schema.Node) {
		if n.Kind() != schema.KindScalar {
			res.Errata.Error("type entry at line %d must be a string", n.Line())
			return
		}
		name := n.Scalar()
		t := schema.ParseSchemaType(name)
		if t == schema.TypeInvalid {
			res.Errata.Error("%q at line %d is not a valid type (expected one of %s)", name, n.Line(), schema.ValidTypeNameList)
			return
		}
		if seen[name] {
			res.Errata.Warn("duplicate type %q at line %d", name, n.Line())
			return
		}
		seen[name] = true
		res.Names = append(res.Names, name)
		res.Set.Set(t)
	}

	switch value.Kind() {
	case schema.KindScalar:
		handle(value)
	case schema.KindSequence:
		for _, item := range value.Items() {
			handle(item)
		}
	default:
		res.Errata.Error("type at line %d must be a string or a sequence of strings", value.Line())
	}
	return res
}
