package kv_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/algharieb/ghareeb-app/internal/kv"
)

func testStore(t *testing.T, s kv.Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "al-ghareeb-users", "blob-1"))
	v, ok, err := s.Get(ctx, "al-ghareeb-users")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "blob-1", v)

	// Overwrite is last-writer-wins on the whole value.
	require.NoError(t, s.Set(ctx, "al-ghareeb-users", "blob-2"))
	v, _, _ = s.Get(ctx, "al-ghareeb-users")
	require.Equal(t, "blob-2", v)

	require.NoError(t, s.Remove(ctx, "al-ghareeb-users"))
	_, ok, err = s.Get(ctx, "al-ghareeb-users")
	require.NoError(t, err)
	require.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove(ctx, "al-ghareeb-users"))
}

func TestFileStore(t *testing.T) {
	testStore(t, kv.NewFile(t.TempDir()))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, kv.NewMemory())
}

func TestRedisStore(t *testing.T) {
	srv := miniredis.RunT(t)
	testStore(t, kv.NewRedis(srv.Addr(), ""))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, kv.NewFile(dir).Set(ctx, "k", "v"))

	v, ok, err := kv.NewFile(dir).Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}
