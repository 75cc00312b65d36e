package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
)

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunMissingSchemaPathIsAnError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "An input schema file is required")
}

func TestRunCompilesSchemaAndWritesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "port.yaml", "type: string\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	_, err = os.Stat(filepath.Join(dir, "Schema_types.go"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Schema.go"))
	assert.NoError(t, err)
}

func TestRunUnresolvableRefIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "bad.yaml", "\"$ref\": \"#/nope\"\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `unable to find ref "#/nope"`)
}

func TestParseArgsHonorsExplicitOptionsAndWarnsOnUnknown(t *testing.T) {
	var diag diagnostics.Errata
	opts := parseArgs([]string{"--class=Config", "--weird", "schema.yaml"}, &diag)

	assert.Equal(t, "Config", opts.class)
	assert.Equal(t, "schema.yaml", opts.schemaPath)
	assert.Contains(t, diag.Strings()[0], `unknown option "--weird"`)
}

func TestResolveDefaultsChainsFromClassWhenBothOmitted(t *testing.T) {
	opts := cliOptions{class: "Schema"}
	resolveDefaults(&opts)
	assert.Equal(t, "Schema_types.go", opts.hdr)
	assert.Equal(t, "Schema.go", opts.src)
}

func TestResolveDefaultsChainsFromSrc(t *testing.T) {
	opts := cliOptions{class: "Schema", src: "out/config.go"}
	resolveDefaults(&opts)
	assert.Equal(t, "out/config_types.go", opts.hdr)
	assert.Equal(t, "out/config.go", opts.src)
}
