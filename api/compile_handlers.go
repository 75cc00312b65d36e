package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/SolidWallOfCode/canned-yaml/internal/cache"
	"github.com/SolidWallOfCode/canned-yaml/internal/compiler"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// CompileHandlers serves the compile-as-a-service surface over the engine
// in internal/compiler, memoizing results in a cache.Store.
type CompileHandlers struct {
	store   cache.Store
	metrics *Metrics
}

// NewCompileHandlers registers the compile endpoint with the API.
func NewCompileHandlers(api huma.API, store cache.Store, metrics *Metrics) {
	h := &CompileHandlers{store: store, metrics: metrics}

	huma.Register(api, huma.Operation{
		OperationID: "compile-schema",
		Method:      "POST",
		Path:        "/v1/compile",
		Summary:     "Compile a schema",
		Description: "Compiles a JSON-Schema document (YAML or JSON) into Go validator source.",
		Tags:        []string{"Compile"},
	}, h.Compile)
}

// CompileInput is the request body for a compile operation.
type CompileInput struct {
	Body struct {
		Schema    string `json:"schema" doc:"The schema document, as YAML or JSON"`
		ClassName string `json:"className,omitempty" doc:"Generated validator class name" default:"Schema"`
	}
}

// CompileOutput is the response body for a compile operation.
type CompileOutput struct {
	Body struct {
		Header      string   `json:"header"`
		Source      string   `json:"source"`
		Diagnostics []string `json:"diagnostics"`
		OK          bool     `json:"ok"`
	}
}

// Compile parses and compiles the submitted schema, serving a cached
// artifact when the schema's content hash has already been compiled with
// the same class name.
func (h *CompileHandlers) Compile(ctx context.Context, input *CompileInput) (*CompileOutput, error) {
	start := time.Now()

	className := input.Body.ClassName
	if className == "" {
		className = "Schema"
	}
	hash := contentHash(className, input.Body.Schema)

	if cached, err := h.store.Get(ctx, hash); err == nil && cached != nil {
		h.metrics.CompileTotal.WithLabelValues("cache_hit").Inc()
		resp := &CompileOutput{}
		resp.Body.Header = cached.Header
		resp.Body.Source = cached.Source
		resp.Body.Diagnostics = cached.Diagnostics
		resp.Body.OK = cached.OK
		return resp, nil
	}

	root, err := schema.Parse([]byte(input.Body.Schema))
	if err != nil {
		h.metrics.CompileTotal.WithLabelValues("parse_error").Inc()
		return nil, huma.Error400BadRequest("invalid schema: " + err.Error())
	}

	packageName := "validator"
	result := compiler.Process(root, className, packageName)
	diagLines := result.Diagnostics.Strings()

	for _, n := range result.Diagnostics.Notes() {
		h.metrics.DiagnosticsBySeverity.WithLabelValues(n.Severity.String()).Inc()
	}
	h.metrics.CompileDuration.Observe(time.Since(start).Seconds())

	ok := result.Diagnostics.IsOK()
	outcome := "ok"
	if !ok {
		outcome = "compile_error"
	}
	h.metrics.CompileTotal.WithLabelValues(outcome).Inc()

	slog.Info("compile request handled",
		"className", className,
		"schemaBytes", len(input.Body.Schema),
		"diagnosticCount", len(diagLines),
		"ok", ok,
		"latency", time.Since(start))

	artifact := &cache.Artifact{
		Hash:        hash,
		ClassName:   className,
		Header:      result.Header,
		Source:      result.Source,
		Diagnostics: diagLines,
		OK:          ok,
		CompiledAt:  time.Now().UTC(),
	}
	if err := h.store.Put(ctx, artifact); err != nil {
		slog.Warn("failed to persist compiled artifact", "hash", hash, "error", err)
	}

	resp := &CompileOutput{}
	resp.Body.Header = result.Header
	resp.Body.Source = result.Source
	resp.Body.Diagnostics = diagLines
	resp.Body.OK = ok
	return resp, nil
}

func contentHash(className, content string) string {
	sum := sha256.Sum256([]byte(className + "\x00" + content))
	return hex.EncodeToString(sum[:])
}
