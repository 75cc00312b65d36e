package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// processRequired reads a "required" sub-value (a sequence of property
// names) and emits, for each in source order, a missing-key check
// against the currently-validated mapping (spec.md §4.5).
func processRequired(ctx *Context, value schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	var errata diagnostics.Errata

	if value.Kind() != schema.KindSequence {
		errata.Error("required at line %d must be a sequence of strings", value.Line())
		return errata
	}

	for _, item := range value.Items() {
		if item.Kind() != schema.KindScalar {
			errata.Error("required entry at line %d must be a string", item.Line())
			continue
		}
		tag := item.Scalar()
		ctx.Src.Writef("if _, ok := %s.Get(%s); !ok {\n", varExpr, strconv.Quote(tag))
		ctx.Src.Indent()
		msg := fmt.Sprintf("%%s is missing required property %s at line %%d", strconv.Quote(tag))
		lit := strconv.Quote(msg)
		if !strings.Contains(msg, "`") {
			lit = "`" + msg + "`"
		}
		ctx.Src.Writef("erratum.Error(%s, %s, %s.Line())\n", lit, labelExpr, varExpr)
		ctx.Src.Writef("return false\n")
		ctx.Src.Exdent()
		ctx.Src.Writef("}\n")
	}
	return errata
}
