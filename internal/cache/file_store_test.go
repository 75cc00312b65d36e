package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache_filestore_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	store, err := NewFileStore(tmpDir)
	require.NoError(t, err)

	ctx := context.Background()
	artifact := &Artifact{
		Hash:            "abc123",
		ClassName:       "Schema",
		Header:          "package validator\n",
		Source:          "package validator\n",
		Diagnostics:     []string{"[INFO] ok"},
		DefinitionCount: 1,
		CompiledAt:      time.Now().UTC(),
	}

	require.NoError(t, store.Put(ctx, artifact))

	got, err := store.Get(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, artifact.ClassName, got.ClassName)
	assert.Equal(t, artifact.Source, got.Source)
}

func TestFileStoreMissReturnsNilNotError(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cache_filestore_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	store, err := NewFileStore(tmpDir)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
