package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.False(t, cfg.Server.MockStore)
		assert.Equal(t, "http://localhost:8080", cfg.ItemAPI.BaseURL)
		assert.Equal(t, 100, cfg.ItemAPI.MaxBatchSize)
		assert.Equal(t, 100, cfg.ItemAPI.MaxConcurrent)
		assert.Equal(t, 100, cfg.Ingest.BatchSize)
		assert.True(t, cfg.Ingest.CleanupUploads)
		assert.Equal(t, "uploads", cfg.Ingest.UploadPrefix)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("ITEMAPI_BASE_URL", "http://store.internal")
		t.Setenv("INGEST_BATCH_SIZE", "25")
		t.Setenv("SERVER_MOCK_STORE", "true")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "http://store.internal", cfg.ItemAPI.BaseURL)
		assert.Equal(t, 25, cfg.Ingest.BatchSize)
		assert.True(t, cfg.Server.MockStore)
	})

	t.Run("Dotenv File", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
