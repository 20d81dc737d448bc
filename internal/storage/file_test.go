package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	_, ok, err := store.Get(ctx, "orderHistory")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "orderHistory", `[{"id":1}]`))

	value, ok, err := store.Get(ctx, "orderHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "@cart_items", `[]`))

	second, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	value, ok, err := second.Get(ctx, "@cart_items")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Set(ctx, "@cart_items", `[]`))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewFileStore_EmptyDir(t *testing.T) {
	store, err := NewFileStore("", zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, store)
}
