// Package api wires the compile service's HTTP surface: chi for routing,
// huma for request/response typing and OpenAPI generation, and Prometheus
// for operational metrics.
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

// API bundles the chi router and the huma layer registered on top of it.
type API struct {
	Router chi.Router
	Huma   huma.API
}

// NewAPI creates a new API instance with the compile endpoint's OpenAPI
// metadata. Callers mount a Metrics handler at /metrics separately (see
// cmd/schemacd), since the registry backing it is constructed alongside
// the handlers that report to it.
func NewAPI() *API {
	router := chi.NewMux()
	config := huma.DefaultConfig("Schema Compiler API", "1.0.0")
	config.Info.Description = "Compiles a JSON-Schema document into Go validator source."
	humaAPI := humachi.New(router, config)

	return &API{
		Router: router,
		Huma:   humaAPI,
	}
}

// Start starts the API server on the given address.
func (a *API) Start(addr string) error {
	return http.ListenAndServe(addr, a.Router)
}
