package compiler

import (
	"strconv"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// processProperties reads a "properties" sub-value (a mapping of key to
// sub-schema). For each key, in document order, it emits a conditional
// that looks the key up on the validated node and recurses into the
// sub-schema only if present - an absent property is not itself an
// error here (spec.md §4.5; "required" is where absence is checked).
func processProperties(ctx *Context, value schema.Node, varExpr string) diagnostics.Errata {
	var errata diagnostics.Errata

	if value.Kind() != schema.KindMapping {
		errata.Error("properties at line %d must be a mapping", value.Line())
		return errata
	}

	for _, pair := range value.Pairs() {
		childVar := ctx.NextVar()
		ctx.Src.Writef("if %s, ok := %s.Get(%s); ok {\n", childVar, varExpr, strconv.Quote(pair.Key))
		ctx.Src.Indent()
		childLabel := strconv.Quote(pair.Key)
		errata.Note(ValidateNode(ctx, pair.Value, childVar, childLabel))
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
	}
	return errata
}
