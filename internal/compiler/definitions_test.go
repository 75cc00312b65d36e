package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolidWallOfCode/canned-yaml/schema"
)

func TestIdentifierForSanitizesRef(t *testing.T) {
	assert.Equal(t, "v_definitions_port", identifierFor("#/definitions/port"))
	assert.Equal(t, "v_a_b", identifierFor("#/a-b"))
}

func TestRegisterReusesIdentifierForRepeatRef(t *testing.T) {
	d := newDefinitions()
	root := mustParse(t, "{}")
	id1, isNew1 := d.Register("#/definitions/port", root, root)
	id2, isNew2 := d.Register("#/definitions/port", root, root)

	assert.True(t, isNew1)
	assert.False(t, isNew2)
	assert.Equal(t, id1, id2)
	assert.Len(t, d.pending, 1, "a repeat reference must not queue a second body generation")
}

func TestLocateResolvesNestedPath(t *testing.T) {
	root := mustParse(t, "definitions:\n  port:\n    type: integer\n")
	rv := Locate(root, "#/definitions/port")
	require.True(t, rv.IsOK())
	child, ok := rv.Value.Get("type")
	require.True(t, ok)
	assert.Equal(t, "integer", child.Scalar())
}

func TestLocateReportsMissingKey(t *testing.T) {
	root := mustParse(t, "definitions:\n  port:\n    type: integer\n")
	rv := Locate(root, "#/definitions/nope")
	assert.False(t, rv.IsOK())
	assert.Contains(t, rv.Errata.Strings()[0], `"nope" is not in the map`)
}

func TestLocateReportsNotAMap(t *testing.T) {
	root := mustParse(t, "definitions: 5\n")
	rv := Locate(root, "#/definitions/port")
	assert.False(t, rv.IsOK())
	assert.Contains(t, rv.Errata.Strings()[0], `"port" is not a map`)
}

func mustParse(t *testing.T, text string) schema.Node {
	t.Helper()
	n, err := schema.Parse([]byte(text))
	require.NoError(t, err)
	return n
}
