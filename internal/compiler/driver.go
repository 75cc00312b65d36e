package compiler

import (
	"strings"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// ValidateNode is the top-level traversal entry point (spec.md §4.6):
// dispatches on $ref first, then property processors in the fixed order,
// aggregating schema-compile-time diagnostics and appending validator
// source code to ctx.Src as it goes.
//
// varExpr is the Go expression that holds the node being validated at
// runtime ("node", "node_2", ...); labelExpr is the Go expression used to
// label that node in emitted diagnostic text - the "name" parameter at a
// function's entry, or a literal string for a property reached through
// inline recursion.
func ValidateNode(ctx *Context, schemaNode schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	var errata diagnostics.Errata

	if schemaNode.Kind() != schema.KindMapping {
		errata.Error("schema at line %d must be a mapping", schemaNode.Line())
		return errata
	}

	errata.Note(checkUnknownProperties(schemaNode))

	if refNode, ok := schemaNode.Get(schema.PropertyName(schema.PropRef)); ok {
		return validateRef(ctx, schemaNode, refNode, varExpr, labelExpr)
	}

	typeSet := schema.FullTypeSet()
	if typeNode, ok := schemaNode.Get("type"); ok {
		result := processType(typeNode)
		errata.Note(result.Errata)
		if !result.Errata.IsOK() {
			return errata
		}
		typeSet = result.Set
		emitTypeCheck(ctx, varExpr, labelExpr, result)
	}

	hasObjectGroup := hasAny(schemaNode, "properties", "required")
	if typeSet.Has(schema.TypeObject) && hasObjectGroup {
		guarded := typeSet.Count() != 1
		if guarded {
			ctx.Src.Writef("if runtime.IsObjectType(%s) {\n", varExpr)
			ctx.Src.Indent()
		}
		errata.Note(runObjectGroup(ctx, schemaNode, varExpr, labelExpr))
		if guarded {
			ctx.Src.Exdent()
			ctx.Src.Writef("}\n")
		}
	}

	hasArrayGroup := hasAny(schemaNode, "items", "minItems", "maxItems")
	if typeSet.Has(schema.TypeArray) && hasArrayGroup {
		guarded := typeSet.Count() != 1
		if guarded {
			ctx.Src.Writef("if runtime.IsArrayType(%s) {\n", varExpr)
			ctx.Src.Indent()
		}
		errata.Note(runArrayGroup(ctx, schemaNode, varExpr, labelExpr))
		if guarded {
			ctx.Src.Exdent()
			ctx.Src.Writef("}\n")
		}
	}

	if anyOfNode, ok := schemaNode.Get("anyOf"); ok {
		errata.Note(processAnyOf(ctx, anyOfNode, varExpr, labelExpr))
	}
	if oneOfNode, ok := schemaNode.Get("oneOf"); ok {
		errata.Note(processOneOf(ctx, oneOfNode, varExpr, labelExpr))
	}
	if enumNode, ok := schemaNode.Get("enum"); ok {
		errata.Note(processEnum(ctx, enumNode, varExpr, labelExpr))
	}

	return errata
}

// checkUnknownProperties warns on every mapping key outside the
// recognized Property set (spec.md §9's open question, resolved to warn
// rather than silently ignore or fail).
func checkUnknownProperties(schemaNode schema.Node) diagnostics.Errata {
	var errata diagnostics.Errata
	for _, pair := range schemaNode.Pairs() {
		if _, ok := schema.ParseProperty(pair.Key); !ok {
			errata.Warn("%q at line %d is not a recognized schema property - ignored", pair.Key, pair.Value.Line())
		}
	}
	return errata
}

func hasAny(n schema.Node, keys ...string) bool {
	for _, k := range keys {
		if _, ok := n.Get(k); ok {
			return true
		}
	}
	return false
}

func runObjectGroup(ctx *Context, schemaNode schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	var errata diagnostics.Errata
	if propertiesNode, ok := schemaNode.Get("properties"); ok {
		errata.Note(processProperties(ctx, propertiesNode, varExpr))
	}
	if requiredNode, ok := schemaNode.Get("required"); ok {
		errata.Note(processRequired(ctx, requiredNode, varExpr, labelExpr))
	}
	return errata
}

func runArrayGroup(ctx *Context, schemaNode schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	var errata diagnostics.Errata

	limits, limitErrata := readSizeLimits(schemaNode)
	errata.Note(limitErrata)
	if !limitErrata.IsOK() {
		return errata
	}
	emitSizeChecks(ctx, varExpr, labelExpr, limits)

	if itemsNode, ok := schemaNode.Get("items"); ok {
		errata.Note(processItems(ctx, itemsNode, varExpr, labelExpr, limits))
	}
	return errata
}

// validateRef implements step 2 of spec.md §4.6: a $ref short-circuits
// every other property in the mapping.
func validateRef(ctx *Context, schemaNode, refNode schema.Node, varExpr, labelExpr string) diagnostics.Errata {
	var errata diagnostics.Errata

	if refNode.Kind() != schema.KindScalar {
		errata.Error("$ref at line %d must be a string", refNode.Line())
		return errata
	}
	if len(schemaNode.Pairs()) > 1 {
		errata.Warn("$ref at line %d has sibling properties; they are ignored", refNode.Line())
	}

	ref := refNode.Scalar()
	if id, ok := ctx.defs.Lookup(ref); ok {
		emitRefCall(ctx, id, varExpr, labelExpr)
		return errata
	}

	located := Locate(ctx.Root, ref)
	if !located.IsOK() {
		errata.NoteCause(diagnostics.Error, located.Errata, "unable to find ref %q", ref)
		return errata
	}

	id, _ := ctx.defs.Register(ref, located.Value, refNode)
	emitRefCall(ctx, id, varExpr, labelExpr)
	return errata
}

func emitRefCall(ctx *Context, id, varExpr, labelExpr string) {
	ctx.Src.Writef("if !%s(erratum, %s, %s) {\n", id, varExpr, labelExpr)
	ctx.Src.Indent()
	ctx.Src.Writef("return false\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")
}

// generateDefinitionBody emits a standalone top-level function for a
// queued definition (see drainDefinitions in process.go). It resets the
// source buffer's indentation to zero defensively - by the time the
// worklist drains, the buffer should already be back at top level, but
// a definition's own body may itself discover and immediately want to
// reference further nested state - and restores it afterward.
func generateDefinitionBody(ctx *Context, id string, target schema.Node) diagnostics.Errata {
	saved := ctx.Src.IndentLevel()
	for i := 0; i < saved; i++ {
		ctx.Src.Exdent()
	}

	ctx.Src.Writef("\nfunc %s(erratum *diagnostics.Errata, node schema.Node, name string) bool {\n", id)
	ctx.Src.Indent()
	errata := ValidateNode(ctx, target, "node", "name")
	ctx.Src.Writef("return erratum.Severity() < diagnostics.Error\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")

	for i := 0; i < saved; i++ {
		ctx.Src.Indent()
	}
	return errata
}

func emitTypeCheck(ctx *Context, varExpr, labelExpr string, result typeResult) {
	calls := make([]string, 0, len(result.Names))
	for _, name := range result.Names {
		calls = append(calls, "runtime."+schema.RuntimeHelperName(schema.ParseSchemaType(name))+"("+varExpr+")")
	}
	cond := strings.Join(calls, " || ")
	if len(calls) > 1 {
		cond = "(" + cond + ")"
	}
	expected := strings.Join(result.Names, " or ")

	ctx.Src.Writef("if !%s {\n", cond)
	ctx.Src.Indent()
	ctx.Src.Writef("erratum.Error(\"'%%s' value at line %%d was not %s\", %s, %s.Line())\n", expected, labelExpr, varExpr)
	ctx.Src.Writef("return false\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")
}
