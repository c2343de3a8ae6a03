package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, "memory", cfg.Directory.Backend)
	assert.Equal(t, 0.72, cfg.Matching.MinSimilarity)
	assert.Equal(t, 25, cfg.Assembler.MaxPeople)
	assert.Equal(t, 10, cfg.Assembler.MaxDocuments)
	assert.Equal(t, 5*time.Minute, cfg.Cache.Redis.TTL)
	assert.False(t, cfg.Cache.Redis.Enabled)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("DIRECTORY_BACKEND", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/orgcontext")
	t.Setenv("MATCHING_MIN_SIMILARITY", "0.85")
	t.Setenv("ASSEMBLER_MAX_PEOPLE", "5")
	t.Setenv("DIRECTORY_CACHE_REDIS_ENABLED", "true")

	cfg := LoadFromEnv()

	assert.Equal(t, "postgres", cfg.Directory.Backend)
	assert.Equal(t, "postgres://localhost/orgcontext", cfg.Directory.Postgres.URL)
	assert.Equal(t, 0.85, cfg.Matching.MinSimilarity)
	assert.Equal(t, 5, cfg.Assembler.MaxPeople)
	assert.True(t, cfg.Cache.Redis.Enabled)
}

func TestLoadFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MATCHING_MIN_SIMILARITY", "not-a-number")
	t.Setenv("ASSEMBLER_MAX_PEOPLE", "many")

	cfg := LoadFromEnv()

	assert.Equal(t, 0.72, cfg.Matching.MinSimilarity)
	assert.Equal(t, 25, cfg.Assembler.MaxPeople)
}

func TestReload(t *testing.T) {
	// Restore the global config after the env var cleanup has run.
	t.Cleanup(func() { Reload() })
	t.Setenv("ASSEMBLER_MAX_PEOPLE", "7")

	cfg := Reload()
	assert.Equal(t, 7, cfg.Assembler.MaxPeople)
	assert.Same(t, cfg, Get())
}
