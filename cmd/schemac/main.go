// Command schemac compiles a JSON-Schema document into Go source for a
// standalone validator (spec.md §6's CLI contract).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SolidWallOfCode/canned-yaml/internal/compiler"
	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	obslog "github.com/SolidWallOfCode/canned-yaml/internal/obs/logger"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses arguments, compiles the named schema, and writes the header
// and source files. Returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	obslog.Setup(obslog.Config{Level: "debug", Format: "text", Output: "stdout"})

	var diag diagnostics.Errata
	opts := parseArgs(args, &diag)

	if opts.schemaPath == "" {
		diag.Error("An input schema file is required")
		return finish(diag, stderr)
	}

	data, err := os.ReadFile(opts.schemaPath)
	if err != nil {
		diag.Error("failed to read schema file %q: %v", opts.schemaPath, err)
		return finish(diag, stderr)
	}

	root, err := schema.Parse(data)
	if err != nil {
		diag.Error("failed to parse schema file %q: %v", opts.schemaPath, err)
		return finish(diag, stderr)
	}

	resolveDefaults(&opts)

	packageName := strings.ToLower(opts.class)
	result := compiler.Process(root, opts.class, packageName)
	diag.Note(result.Diagnostics)

	for _, line := range result.Diagnostics.Strings() {
		slog.Debug(line)
	}

	if err := os.WriteFile(opts.hdr, []byte(result.Header), 0644); err != nil {
		diag.Error("failed to write header file %q: %v", opts.hdr, err)
	}
	if err := os.WriteFile(opts.src, []byte(result.Source), 0644); err != nil {
		diag.Error("failed to write source file %q: %v", opts.src, err)
	}

	return finish(diag, stderr)
}

// finish prints every accumulated diagnostic and returns the exit code
// (spec.md §6: 0 if every diagnostic is below ERROR, non-zero otherwise).
func finish(diag diagnostics.Errata, stderr io.Writer) int {
	for _, line := range diag.Strings() {
		fmt.Fprintln(stderr, line)
	}
	if diag.IsOK() {
		return 0
	}
	return 1
}

type cliOptions struct {
	schemaPath string
	hdr        string
	src        string
	class      string
}

// parseArgs implements the §6 option grammar by hand rather than via the
// standard flag package: an unknown option is a warning, not a hard parse
// failure, which flag.Parse has no hook for (SUPPLEMENTED FEATURES item 4).
func parseArgs(args []string, diag *diagnostics.Errata) cliOptions {
	opts := cliOptions{class: "Schema"}

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--":
			i++
			continue
		case strings.HasPrefix(arg, "--hdr="):
			opts.hdr = strings.TrimPrefix(arg, "--hdr=")
		case arg == "--hdr":
			v, ok := takeValue(args, &i)
			if !ok {
				diag.Error("%q requires a value", arg)
				break
			}
			opts.hdr = v
		case strings.HasPrefix(arg, "--src="):
			opts.src = strings.TrimPrefix(arg, "--src=")
		case arg == "--src":
			v, ok := takeValue(args, &i)
			if !ok {
				diag.Error("%q requires a value", arg)
				break
			}
			opts.src = v
		case strings.HasPrefix(arg, "--class="):
			opts.class = strings.TrimPrefix(arg, "--class=")
		case arg == "--class":
			v, ok := takeValue(args, &i)
			if !ok {
				diag.Error("%q requires a value", arg)
				break
			}
			opts.class = v
		case strings.HasPrefix(arg, "-"):
			diag.Warn("unknown option %q - ignored", arg)
		default:
			if opts.schemaPath == "" {
				opts.schemaPath = arg
			} else {
				diag.Warn("unexpected extra argument %q - ignored", arg)
			}
		}
		i++
	}
	return opts
}

// takeValue consumes the next argument as a flag's value, advancing i to
// point at it (the outer loop's i++ then moves past it).
func takeValue(args []string, i *int) (string, bool) {
	if *i+1 >= len(args) {
		return "", false
	}
	*i++
	return args[*i], true
}

// resolveDefaults implements §6's default chain: hdr defaults from the
// (possibly empty) src path or the class name; src then defaults from the
// now-resolved hdr path, so the "both omitted" case naturally collapses to
// the class-name default for both, matching the original's getopt_long flow.
func resolveDefaults(opts *cliOptions) {
	if opts.hdr == "" {
		if opts.src != "" {
			opts.hdr = stripExt(opts.src) + "_types.go"
		} else {
			opts.hdr = opts.class + "_types.go"
		}
	}
	if opts.src == "" {
		stem := strings.TrimSuffix(stripExt(opts.hdr), "_types")
		opts.src = stem + ".go"
	}
}

func stripExt(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}
