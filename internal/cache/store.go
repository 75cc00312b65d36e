// Package cache memoizes compiled validator artifacts for the compile
// service (cmd/schemacd), keyed by a content hash of the submitted schema,
// so that resubmitting an identical schema skips recompilation.
package cache

import (
	"context"
	"time"
)

// Artifact is a compiled validator: the two output streams plus enough of
// the compilation's diagnostics to reconstruct the response without
// recompiling.
type Artifact struct {
	Hash            string    `json:"hash" bson:"_id"`
	ClassName       string    `json:"className" bson:"className"`
	Header          string    `json:"header" bson:"header"`
	Source          string    `json:"source" bson:"source"`
	Diagnostics     []string  `json:"diagnostics" bson:"diagnostics"`
	OK              bool      `json:"ok" bson:"ok"`
	DefinitionCount int       `json:"definitionCount" bson:"definitionCount"`
	CompiledAt      time.Time `json:"compiledAt" bson:"compiledAt"`
}

// Store defines the interface for persisting compiled artifacts.
type Store interface {
	Get(ctx context.Context, hash string) (*Artifact, error)
	Put(ctx context.Context, artifact *Artifact) error
}
