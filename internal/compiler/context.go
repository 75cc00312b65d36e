// Package compiler implements the schema compilation engine: the
// traversal of a schema tree, the accumulation of definitions, the
// resolution of $ref cross-references, and the emission of validator
// source code whose structure mirrors the schema's logical structure
// (spec.md §1, §3's Compilation Context).
package compiler

import (
	"fmt"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/internal/emit"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// Context is process-wide for a single compilation. It is never shared
// across compilations and never accessed concurrently (spec.md §5).
type Context struct {
	// Root is the schema document's root node, retained for the full
	// compilation so $ref targets can be resolved at arbitrary depth.
	Root schema.Node

	// ClassName is the name of the generated validator type.
	ClassName string

	// Hdr and Src are the two independent emit buffers backing the
	// header (type declarations) and source (function bodies) streams.
	Hdr *emit.Buffer
	Src *emit.Buffer

	varCounter  int
	defs        *Definitions
	Diagnostics diagnostics.Errata
}

// NewContext constructs a Context ready to drive a single compilation.
func NewContext(root schema.Node, className string) *Context {
	return &Context{
		Root:      root,
		ClassName: className,
		Hdr:       emit.New(),
		Src:       emit.New(),
		defs:      newDefinitions(),
	}
}

// NextVar allocates the next variable name from the per-context counter
// (spec.md §4.6): node_1, node_2, ... The counter never resets and is not
// scoped by the generated code's braces.
func (c *Context) NextVar() string {
	c.varCounter++
	return fmt.Sprintf("node_%d", c.varCounter)
}
