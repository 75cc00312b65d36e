package compiler

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
)

// assertValidGoSource parses header and source as standalone Go files,
// catching the class of bug where the emitted text reads fine as a
// template but is not actually valid Go (e.g. an unescaped quote splicing
// two string literals together).
func assertValidGoSource(t *testing.T, res Result) {
	t.Helper()
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "header.go", res.Header, parser.AllErrors)
	assert.NoError(t, err, "generated header is not valid Go:\n%s", res.Header)
	_, err = parser.ParseFile(fset, "source.go", res.Source, parser.AllErrors)
	assert.NoError(t, err, "generated source is not valid Go:\n%s", res.Source)
}

func TestProcessSingleType(t *testing.T) {
	root := mustParse(t, "type: string\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, "runtime.IsStringType(node)")
	assert.Contains(t, res.Source, "'%s' value at line %d was not string")
	assertValidGoSource(t, res)
}

func TestProcessUnionType(t *testing.T) {
	root := mustParse(t, "type: [string, integer]\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, "runtime.IsStringType(node) || runtime.IsIntegerType(node)")
}

func TestProcessRequiredEmitsMissingKeyCheck(t *testing.T) {
	root := mustParse(t, strings.Join([]string{
		"type: object",
		"required: [a, b]",
		"properties:",
		"  a: {type: string}",
		"  b: {type: integer}",
	}, "\n"))
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, `missing required property "b"`)
	assert.Contains(t, res.Source, `missing required property "a"`)
	// source order preservation: "a" is checked before "b"
	assert.Less(t, strings.Index(res.Source, `"a"`), strings.Index(res.Source, `"b"`))
	assertValidGoSource(t, res)
}

func TestProcessArraySizeLimits(t *testing.T) {
	root := mustParse(t, strings.Join([]string{
		"type: array",
		"minItems: 2",
		"maxItems: 5",
		"items: {type: integer}",
	}, "\n"))
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, "instead of the required 2")
	assert.Contains(t, res.Source, "exceeds the maximum of 5")
}

func TestProcessRefProducesSingleDefinition(t *testing.T) {
	root := mustParse(t, strings.Join([]string{
		"definitions:",
		"  port: {type: integer}",
		"$ref: \"#/definitions/port\"",
	}, "\n"))
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Equal(t, 1, strings.Count(res.Source, "func v_definitions_port("))
	assert.Contains(t, res.Source, "v_definitions_port(erratum, node, name)")
}

func TestProcessAnyOf(t *testing.T) {
	root := mustParse(t, "anyOf:\n  - {type: string}\n  - {type: integer}\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, "was not valid for any alternative")
	assertValidGoSource(t, res)
}

func TestProcessOneOfRequiresExactlyOneMatch(t *testing.T) {
	root := mustParse(t, "oneOf:\n  - {type: string}\n  - {type: integer}\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, "did not match exactly one alternative")
	assert.Contains(t, res.Source, "== 1")
	assertValidGoSource(t, res)
}

func TestProcessUnresolvableRefIsAnError(t *testing.T) {
	root := mustParse(t, "$ref: \"#/nope\"\n")
	res := Process(root, "Schema", "validator")

	assert.False(t, res.Diagnostics.IsOK())
	found := false
	for _, s := range res.Diagnostics.Strings() {
		if strings.Contains(s, `unable to find ref "#/nope"`) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestProcessFailingDefinitionBodyGetsProvenanceNote(t *testing.T) {
	root := mustParse(t, strings.Join([]string{
		"definitions:",
		"  bad: {type: widget}",
		"\"$ref\": \"#/definitions/bad\"",
	}, "\n"))
	res := Process(root, "Schema", "validator")

	assert.False(t, res.Diagnostics.IsOK())
	found := false
	for _, s := range res.Diagnostics.Strings() {
		if strings.Contains(s, `failed to generate definition "#/definitions/bad"`) && strings.Contains(s, "used at") {
			found = true
		}
	}
	assert.True(t, found, "expected a provenance note naming the failing definition and its use site, got: %v", res.Diagnostics.Strings())
}

func TestProcessCyclicRefsProduceExactlyOneFunctionEach(t *testing.T) {
	root := mustParse(t, strings.Join([]string{
		"definitions:",
		"  a: {properties: {next: {\"$ref\": \"#/definitions/b\"}}}",
		"  b: {properties: {next: {\"$ref\": \"#/definitions/a\"}}}",
		"\"$ref\": \"#/definitions/a\"",
	}, "\n"))
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Equal(t, 1, strings.Count(res.Source, "func v_definitions_a("))
	assert.Equal(t, 1, strings.Count(res.Source, "func v_definitions_b("))
	assertValidGoSource(t, res)
}

func TestProcessEnumRoundTrip(t *testing.T) {
	root := mustParse(t, "enum: [1, 2, 3]\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Contains(t, res.Source, "runtime.Equal(node, c)")
	assert.Contains(t, res.Source, "schema.Parse([]byte(")
	assertValidGoSource(t, res)
}

func TestProcessAnyOfMalformedAlternativeAbortsEmission(t *testing.T) {
	root := mustParse(t, "anyOf:\n  - {type: string}\n  - {type: widget}\n")
	res := Process(root, "Schema", "validator")

	assert.False(t, res.Diagnostics.IsOK())
	found := false
	for _, s := range res.Diagnostics.Strings() {
		if strings.Contains(s, "widget") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestProcessOneOfMalformedAlternativeAbortsEmission(t *testing.T) {
	root := mustParse(t, "oneOf:\n  - {type: string}\n  - {required: \"not-a-sequence\"}\n")
	res := Process(root, "Schema", "validator")

	assert.False(t, res.Diagnostics.IsOK())
}

func TestProcessEmptyAnyOfWarns(t *testing.T) {
	root := mustParse(t, "anyOf: []\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	assert.Equal(t, diagnostics.Warn, res.Diagnostics.Severity())
}

func TestProcessWarnsOnUnrecognizedProperty(t *testing.T) {
	root := mustParse(t, "type: string\nadditionalProperties: false\n")
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	found := false
	for _, s := range res.Diagnostics.Strings() {
		if strings.Contains(s, `"additionalProperties"`) && strings.Contains(s, "not a recognized schema property") {
			found = true
		}
	}
	assert.True(t, found, "expected a warning about the unrecognized property, got: %v", res.Diagnostics.Strings())
	assertValidGoSource(t, res)
}

func TestProcessDefinitionsKeyIsNotFlaggedAsUnrecognized(t *testing.T) {
	root := mustParse(t, strings.Join([]string{
		"definitions:",
		"  port: {type: integer}",
		"$ref: \"#/definitions/port\"",
	}, "\n"))
	res := Process(root, "Schema", "validator")

	require.True(t, res.Diagnostics.IsOK())
	for _, s := range res.Diagnostics.Strings() {
		assert.NotContains(t, s, `"definitions"`)
	}
}

func TestProcessUnknownTypeNameIsAnError(t *testing.T) {
	root := mustParse(t, "type: widget\n")
	res := Process(root, "Schema", "validator")

	assert.False(t, res.Diagnostics.IsOK())
}

func TestHeaderDeclaresErratumField(t *testing.T) {
	root := mustParse(t, "type: string\n")
	res := Process(root, "Schema", "validator")

	assert.Contains(t, res.Header, "type Schema struct")
	assert.Contains(t, res.Header, "Erratum diagnostics.Errata")
}
