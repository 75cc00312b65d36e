package compiler

import (
	"strconv"
	"strings"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// processEnum reads an "enum" sub-value: a non-empty sequence of
// arbitrary schema values. Each alternative is re-serialized at compile
// time and embedded as a string literal that the emitted code re-parses
// at validator start-up, comparing it against the node under validation
// with the runtime structural-equality helper (spec.md §4.5).
func processEnum(ctx *Context, value schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	var errata diagnostics.Errata

	if value.Kind() != schema.KindSequence {
		errata.Error("enum at line %d must be a sequence of values", value.Line())
		return errata
	}
	alternatives := value.Items()
	if len(alternatives) == 0 {
		errata.Warn("enum at line %d is empty; no check emitted", value.Line())
		return errata
	}

	literals := make([]string, 0, len(alternatives))
	display := make([]string, 0, len(alternatives))
	for _, alt := range alternatives {
		lit, err := schema.EncodeLiteral(alt)
		if err != nil {
			errata.Error("enum value at line %d could not be serialized: %v", alt.Line(), err)
			return errata
		}
		literals = append(literals, lit)
		display = append(display, lit)
	}

	suffix := ctx.NextVar()
	constsVar := "enumConsts_" + suffix

	ctx.Src.Writef("%s := []schema.Node{}\n", constsVar)
	for _, lit := range literals {
		ctx.Src.Writef("if n, err := schema.Parse([]byte(%s)); err == nil {\n", lit)
		ctx.Src.Indent()
		ctx.Src.Writef("%s = append(%s, n)\n", constsVar, constsVar)
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
	}

	matchVar := "enumMatch_" + suffix
	ctx.Src.Writef("%s := false\n", matchVar)
	ctx.Src.Writef("for _, c := range %s {\n", constsVar)
	ctx.Src.Indent()
	ctx.Src.Writef("if runtime.Equal(%s, c) {\n", varExpr)
	ctx.Src.Indent()
	ctx.Src.Writef("%s = true\n", matchVar)
	ctx.Src.Writef("break\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")

	ctx.Src.Writef("if !%s {\n", matchVar)
	ctx.Src.Indent()
	msg := "%s value at line %d was not one of " + strconv.Quote(strings.Join(display, ", "))
	ctx.Src.Writef("erratum.Error(%s, %s, %s.Line())\n", strconv.Quote(msg), labelExpr, varExpr)
	ctx.Src.Writef("return false\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")

	return errata
}
