package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herosheet/internal/config"
	"herosheet/internal/domain"
)

func TestOpenStore_Backends(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data", "herosheet.db")
			if backend == "file" {
				path = filepath.Dir(path)
			}

			store, err := OpenStore(config.StorageConfig{Backend: backend, Path: path, Key: "characters"})
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Put(ctx, "characters", []byte("[]")))
			got, err := store.Get(ctx, "characters")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(got))
		})
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := OpenStore(config.StorageConfig{Backend: "redis", Path: "x"})
	assert.ErrorContains(t, err, "redis")
}

func TestOpen_LoadsCollection(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	t.Setenv("HEROSHEET_STORAGE_BACKEND", "file")
	t.Setenv("HEROSHEET_STORAGE_PATH", dir)
	t.Setenv("HEROSHEET_EXPORT_DIR", filepath.Join(dir, "exports"))

	env, err := Open(ctx, "", ModeFullScreen)
	require.NoError(t, err)
	assert.Empty(t, env.Repo.ListAll())

	require.NoError(t, env.Repo.Add(domain.NewCharacter(7)))
	require.NoError(t, env.Repo.Persist(ctx))
	require.NoError(t, env.Close())

	env, err = Open(ctx, "", ModeFullScreen)
	require.NoError(t, err)
	defer env.Close()
	require.Len(t, env.Repo.ListAll(), 1)
	assert.True(t, env.Exporter.IsAvailable())
}
