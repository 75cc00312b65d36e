package cache

import (
	"context"
	"sync"
)

// CachingStore wraps a Store with an in-memory layer, so repeated lookups
// of the same content hash within one process never touch the backing
// store.
type CachingStore struct {
	store Store
	mem   sync.Map
}

// NewCachingStore wraps the given backing store.
func NewCachingStore(store Store) *CachingStore {
	return &CachingStore{store: store}
}

// Get retrieves a compiled artifact, checking the in-memory cache first.
func (c *CachingStore) Get(ctx context.Context, hash string) (*Artifact, error) {
	if val, ok := c.mem.Load(hash); ok {
		return val.(*Artifact), nil
	}

	artifact, err := c.store.Get(ctx, hash)
	if err != nil || artifact == nil {
		return artifact, err
	}

	c.mem.Store(hash, artifact)
	return artifact, nil
}

// Put persists a compiled artifact and populates the in-memory cache.
func (c *CachingStore) Put(ctx context.Context, artifact *Artifact) error {
	if err := c.store.Put(ctx, artifact); err != nil {
		return err
	}
	c.mem.Store(artifact.Hash, artifact)
	return nil
}
