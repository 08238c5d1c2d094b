// internal/persist/memory_test.go
package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLoadMissingNamespace(t *testing.T) {
	m := NewMemoryStore()

	_, err := m.Load(context.Background(), "never-written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSaveOverwrites(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, "ns", []byte("one")))
	require.NoError(t, m.Save(ctx, "ns", []byte("two")))

	got, err := m.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	data := []byte("original")
	require.NoError(t, m.Save(ctx, "ns", data))
	data[0] = 'X'

	got, err := m.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := m.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
