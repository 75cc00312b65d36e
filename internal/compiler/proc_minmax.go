package compiler

import (
	"strconv"
	"strings"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// sizeLimits is the result of reading "minItems"/"maxItems" together,
// since "items" needs both at once to compute its effective length
// (spec.md §4.5).
type sizeLimits struct {
	Min, Max       int
	HasMin, HasMax bool
}

func readSizeLimits(schemaNode schema.Node) (sizeLimits, diagnostics.Errata) {
	var limits sizeLimits
	var errata diagnostics.Errata

	min, hasMin, minErrata := readLimit(schemaNode, "minItems")
	errata.Note(minErrata)
	max, hasMax, maxErrata := readLimit(schemaNode, "maxItems")
	errata.Note(maxErrata)

	limits.Min, limits.HasMin = min, hasMin
	limits.Max, limits.HasMax = max, hasMax

	if hasMin && hasMax && min > max {
		errata.Error("minItems (%d) at line %d is greater than maxItems (%d)", min, schemaNode.Line(), max)
	}
	return limits, errata
}

func readLimit(schemaNode schema.Node, key string) (int, bool, diagnostics.Errata) {
	var errata diagnostics.Errata
	node, ok := schemaNode.Get(key)
	if !ok {
		return 0, false, errata
	}
	if node.Kind() != schema.KindScalar {
		errata.Error("%s at line %d must be a non-negative integer", key, node.Line())
		return 0, false, errata
	}
	v, err := strconv.Atoi(strings.TrimSpace(node.Scalar()))
	if err != nil || v < 0 {
		errata.Error("%s at line %d must be a non-negative integer", key, node.Line())
		return 0, false, errata
	}
	return v, true, errata
}

// emitSizeChecks writes the minItems/maxItems size assertions for the
// currently-validated array.
func emitSizeChecks(ctx *Context, varExpr, labelExpr string, limits sizeLimits) {
	if limits.HasMin {
		ctx.Src.Writef("if len(%s.Items()) < %d {\n", varExpr, limits.Min)
		ctx.Src.Indent()
		ctx.Src.Writef("erratum.Error(\"%%s has only %%d items instead of the required %d\", %s, len(%s.Items()))\n",
			limits.Min, labelExpr, varExpr)
		ctx.Src.Writef("return false\n")
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
	}
	if limits.HasMax {
		ctx.Src.Writef("if len(%s.Items()) > %d {\n", varExpr, limits.Max)
		ctx.Src.Indent()
		ctx.Src.Writef("erratum.Error(\"%%s has %%d items which exceeds the maximum of %d\", %s, len(%s.Items()))\n",
			limits.Max, labelExpr, varExpr)
		ctx.Src.Writef("return false\n")
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
	}
}
