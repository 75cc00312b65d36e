package compiler

import (
	"strconv"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// processItems reads an "items" sub-value. A mapping is a single
// sub-schema applied to every element; a sequence is a tuple schema, one
// sub-schema per position (spec.md §4.5).
func processItems(ctx *Context, value schema.Node, varExpr, labelExpr string, limits sizeLimits) diagnostics.Errata {
	switch value.Kind() {
	case schema.KindMapping:
		return processItemsMapping(ctx, value, varExpr, labelExpr)
	case schema.KindSequence:
		return processItemsTuple(ctx, value, varExpr, labelExpr, limits)
	default:
		var errata diagnostics.Errata
		errata.Error("items at line %d must be a mapping or a sequence", value.Line())
		return errata
	}
}

func processItemsMapping(ctx *Context, subschema schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	childVar := ctx.NextVar()
	ctx.Src.Writef("for _, %s := range %s.Items() {\n", childVar, varExpr)
	ctx.Src.Indent()
	errata := ValidateNode(ctx, subschema, childVar, labelExpr)
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")
	return errata
}

// processItemsTuple implements the fixed-position tuple form. L is the
// number of tuple entries actually reachable once maxItems is accounted
// for; entries beyond it are unreachable and dropped with a warning. If
// L is within the guaranteed minItems floor, validation can be emitted
// straight-line; otherwise the emitted code must switch on the array's
// actual runtime length, one case per reachable length, since a shorter
// array must not be indexed past its end.
func processItemsTuple(ctx *Context, value schema.Node, varExpr, labelExpr string, limits sizeLimits) diagnostics.Errata {
	var errata diagnostics.Errata

	tuples := value.Items()
	effectiveMax := len(tuples)
	if limits.HasMax && limits.Max < effectiveMax {
		effectiveMax = limits.Max
	}
	if limits.HasMax && len(tuples) > limits.Max {
		errata.Warn("items at line %d has %d entries but maxItems is %d; trailing entries are unreachable", value.Line(), len(tuples), limits.Max)
	}

	l := len(tuples)
	if l > effectiveMax {
		l = effectiveMax
	}
	tuples = tuples[:l]

	minFloor := 0
	if limits.HasMin {
		minFloor = limits.Min
	}

	if l <= minFloor {
		for i, sub := range tuples {
			errata.Note(emitTupleElement(ctx, sub, varExpr, labelExpr, i))
		}
		return errata
	}

	ctx.Src.Writef("switch len(%s.Items()) {\n", varExpr)
	for k := 0; k < l; k++ {
		ctx.Src.Writef("case %d:\n", k)
		ctx.Src.Indent()
		for i := 0; i < k; i++ {
			errata.Note(emitTupleElement(ctx, tuples[i], varExpr, labelExpr, i))
		}
		ctx.Src.Exdent()
	}
	ctx.Src.Writef("default:\n")
	ctx.Src.Indent()
	for i := 0; i < l; i++ {
		errata.Note(emitTupleElement(ctx, tuples[i], varExpr, labelExpr, i))
	}
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")

	return errata
}

func emitTupleElement(ctx *Context, sub schema.Node, varExpr, labelExpr string, index int) diagnostics.Errata {
	childVar := ctx.NextVar()
	ctx.Src.Writef("%s := %s.Items()[%d]\n", childVar, varExpr, index)
	childLabel := labelExpr + ` + "[` + strconv.Itoa(index) + `]"`
	return ValidateNode(ctx, sub, childVar, childLabel)
}
