package compiler

import (
	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// processAnyOf reads an "anyOf" sub-value and emits a check that passes
// if at least one alternative validates the node (spec.md §4.5).
func processAnyOf(ctx *Context, value schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	return emitAlternatives(ctx, value, varExpr, labelExpr, alternativesSpec{
		keyword: "anyOf",
		failMsg: "%s was not valid for any alternative",
	})
}

// processOneOf is the same shape as processAnyOf but requires exactly
// one alternative to validate, not merely at least one.
func processOneOf(ctx *Context, value schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	return emitAlternatives(ctx, value, varExpr, labelExpr, alternativesSpec{
		keyword: "oneOf",
		failMsg: "%s did not match exactly one alternative",
	})
}

type alternativesSpec struct {
	keyword string
	failMsg string
}

// emitAlternatives builds one local closure per alternative sub-schema,
// each closing over its own fresh Errata (mirroring a by-reference lambda
// capture) so a failing alternative's diagnostics never leak into a
// passing sibling's, runs every closure, and emits the pass/fail
// assertion per spec. All inner diagnostics are attached to the failure
// note as causes so provenance survives even though only one of the
// alternatives' failures is "the" reported error.
func emitAlternatives(ctx *Context, value schema.Node, varExpr, labelExpr string, spec alternativesSpec) diagnostics.Errata {
	var errata diagnostics.Errata

	if value.Kind() != schema.KindSequence {
		errata.Error("%s at line %d must be a sequence of schemas", spec.keyword, value.Line())
		return errata
	}
	alternatives := value.Items()
	if len(alternatives) == 0 {
		errata.Warn("%s at line %d is empty; no check emitted", spec.keyword, value.Line())
		return errata
	}

	suffix := ctx.NextVar()
	matchesVar := "matches_" + suffix
	causesVar := "causes_" + suffix

	ctx.Src.Writef("{\n")
	ctx.Src.Indent()
	ctx.Src.Writef("%s := 0\n", matchesVar)
	ctx.Src.Writef("var %s diagnostics.Errata\n", causesVar)

	for _, alt := range alternatives {
		ctx.Src.Writef("{\n")
		ctx.Src.Indent()
		ctx.Src.Writef("var erratumValue diagnostics.Errata\n")
		ctx.Src.Writef("erratum := &erratumValue\n")
		ctx.Src.Writef("check := func(node schema.Node, name string) bool {\n")
		ctx.Src.Indent()
		altErrata := ValidateNode(ctx, alt, "node", "name")
		errata.Note(altErrata)
		if altErrata.Severity() >= diagnostics.Error {
			return errata
		}
		ctx.Src.Writef("return erratum.Severity() < diagnostics.Error\n")
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
		ctx.Src.Writef("ok := check(%s, %s)\n", varExpr, labelExpr)
		ctx.Src.Writef("%s.Note(erratumValue)\n", causesVar)
		ctx.Src.Writef("if ok {\n")
		ctx.Src.Indent()
		ctx.Src.Writef("%s++\n", matchesVar)
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
	}

	ctx.Src.Writef("if !(%s) {\n", requiresExpr(matchesVar, spec))
	ctx.Src.Indent()
	ctx.Src.Writef("erratum.NoteCause(diagnostics.Error, %s, %q, %s)\n", causesVar, spec.failMsg, labelExpr)
	ctx.Src.Writef("return false\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")

	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")

	return errata
}

func requiresExpr(matchesVar string, spec alternativesSpec) string {
	if spec.keyword == "oneOf" {
		return matchesVar + " == 1"
	}
	return matchesVar + " >= 1"
}
