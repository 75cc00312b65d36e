package compiler

import (
	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// Result is the outcome of compiling one schema document: the generated
// header and source text, and the schema-compile-time diagnostics
// accumulated along the way.
type Result struct {
	Header      string
	Source      string
	Diagnostics diagnostics.Errata
}

// Process is the top-level entry point (spec.md §3's Emitted Artifact
// Model, §6's header/source contract): it drives the Validator Driver
// over the schema root and produces the two output streams.
func Process(root schema.Node, className, packageName string) Result {
	ctx := NewContext(root, className)
	var diag diagnostics.Errata

	if root.Kind() != schema.KindMapping {
		diag.Error("root schema must be a mapping")
		return Result{Diagnostics: diag}
	}

	emitHeaderPrologue(ctx, packageName)
	emitSourcePrologue(ctx, packageName)

	diag.Note(emitEntryPoint(ctx))
	diag.Note(drainDefinitions(ctx))

	return Result{
		Header:      ctx.Hdr.String(),
		Source:      ctx.Src.String(),
		Diagnostics: diag,
	}
}

func emitHeaderPrologue(ctx *Context, packageName string) {
	ctx.Hdr.Writef("package %s\n\n", packageName)
	ctx.Hdr.Writef("import (\n")
	ctx.Hdr.Indent()
	ctx.Hdr.Writef("\"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics\"\n")
	ctx.Hdr.Writef("\"github.com/SolidWallOfCode/canned-yaml/schema\"\n")
	ctx.Hdr.Exdent()
	ctx.Hdr.Writef(")\n\n")
	ctx.Hdr.Writef("// %s validates a parsed configuration document against its schema.\n", ctx.ClassName)
	ctx.Hdr.Writef("type %s struct {\n", ctx.ClassName)
	ctx.Hdr.Indent()
	ctx.Hdr.Writef("Erratum diagnostics.Errata\n")
	ctx.Hdr.Exdent()
	ctx.Hdr.Writef("}\n")
}

func emitSourcePrologue(ctx *Context, packageName string) {
	ctx.Src.Writef("package %s\n\n", packageName)
	ctx.Src.Writef("import (\n")
	ctx.Src.Indent()
	ctx.Src.Writef("\"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics\"\n")
	ctx.Src.Writef("\"github.com/SolidWallOfCode/canned-yaml/runtime\"\n")
	ctx.Src.Writef("\"github.com/SolidWallOfCode/canned-yaml/schema\"\n")
	ctx.Src.Exdent()
	ctx.Src.Writef(")\n")

	ctx.Src.Writef("\nfunc New%s() *%s {\n", ctx.ClassName, ctx.ClassName)
	ctx.Src.Indent()
	ctx.Src.Writef("return &%s{}\n", ctx.ClassName)
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")
}

// emitEntryPoint writes the ClassName.Validate method - the single public
// callable entry point (spec.md §3).
func emitEntryPoint(ctx *Context) diagnostics.Errata {
	ctx.Src.Writef("\nfunc (c *%s) Validate(node schema.Node) bool {\n", ctx.ClassName)
	ctx.Src.Indent()
	ctx.Src.Writef("c.Erratum = diagnostics.New()\n")
	ctx.Src.Writef("erratum := &c.Erratum\n")
	ctx.Src.Writef("name := \"root\"\n")
	ctx.Src.Writef("_ = name\n")

	errata := ValidateNode(ctx, ctx.Root, "node", "name")

	ctx.Src.Writef("return erratum.Severity() < diagnostics.Error\n")
	ctx.Src.Exdent()
	ctx.Src.Writef("}\n")
	return errata
}

// drainDefinitions generates the body of every queued $ref target,
// including any further definitions those bodies themselves discover,
// until the worklist is empty (spec.md §4.4, §8 property 3's cycle
// tolerance: each $ref is registered, and queued, only on its first
// encounter, so when a body being generated refers back to a definition
// already in the table it reuses that identifier and nothing is queued
// again). A target whose own body fails to
// generate gets an INFO breadcrumb naming both the target and the $ref
// site that pulled it in, so the bare error isn't the only trace of why.
func drainDefinitions(ctx *Context) diagnostics.Errata {
	var errata diagnostics.Errata
	for len(ctx.defs.pending) > 0 {
		item := ctx.defs.pending[0]
		ctx.defs.pending = ctx.defs.pending[1:]
		bodyErrata := generateDefinitionBody(ctx, item.id, item.target)
		if !bodyErrata.IsOK() {
			bodyErrata.Info("failed to generate definition %q at %s, used at %s",
				item.ref, position(item.target), position(item.useNode))
		}
		errata.Note(bodyErrata)
	}
	return errata
}
