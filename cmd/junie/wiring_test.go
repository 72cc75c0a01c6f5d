package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cornjebus/junie/internal/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 0.5, cfg.SimilarityThreshold)
	assert.Equal(t, 20, cfg.RetrievalLimit)
}

func TestResolveConfig_EnvOverlay(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/junie")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/junie", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestResolveConfig_FileWinsOverEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")

	path := writeFile(t, "config.json", `{"database_url": "postgres://file/db", "top_n": 3}`)
	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
	assert.Equal(t, 3, cfg.TopN)
}

func TestLoadTemplatesFile(t *testing.T) {
	path := writeFile(t, "templates.json", `[
		{
			"title": "Freelance Web Design",
			"category": "business",
			"typical_fit": {"sparks": ["Design"], "values": ["Creativity"], "skills_needed": []},
			"embedding": [1, 0, 0]
		},
		{
			"title": "No Embedding",
			"category": "career",
			"typical_fit": {"sparks": [], "values": [], "skills_needed": []}
		},
		{
			"title": "Bad Category",
			"category": "hobby",
			"typical_fit": {"sparks": [], "values": [], "skills_needed": []}
		}
	]`)

	mem := store.NewMemoryStore()
	require.NoError(t, loadTemplatesFile(mem, path))

	assert.Equal(t, 1, mem.Len(), "only the valid, embedded record loads")
}

func TestLoadTemplatesFile_Missing(t *testing.T) {
	mem := store.NewMemoryStore()
	err := loadTemplatesFile(mem, "/nonexistent/templates.json")
	assert.Error(t, err)
}
