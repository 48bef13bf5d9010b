package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
)

func validConfig() Config {
	return Config{
		PokeAPI: PokeAPIConfig{
			BaseURL:     "https://pokeapi.co/api/v2/",
			HTTPTimeout: 30 * time.Second,
			CacheTTL:    24 * time.Hour,
			MaxParallel: 8,
		},
		DND5e: DND5eConfig{
			BaseURL:     "https://www.dnd5eapi.co/api/2014/",
			HTTPTimeout: 30 * time.Second,
			CacheTTL:    24 * time.Hour,
			MaxMonsters: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2/", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.PokeAPI.HTTPTimeout)
	assert.Equal(t, 24*time.Hour, cfg.PokeAPI.CacheTTL)
	assert.Equal(t, 8, cfg.PokeAPI.MaxParallel)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokemon-5e.yaml")
	err := os.WriteFile(path, []byte(`
pokeapi:
  base_url: http://localhost:8080/api/v2/
  http_timeout: 5s
  cache_ttl: 1h
redis:
  addr: localhost:6379
  db: 2
logging:
  level: debug
  format: json
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v2/", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.PokeAPI.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.PokeAPI.CacheTTL)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// untouched keys keep their defaults
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.DND5e.BaseURL)
	assert.Equal(t, 5, cfg.DND5e.MaxMonsters)
	assert.Equal(t, 30*time.Second, cfg.DND5e.HTTPTimeout)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("POKE5E_LOGGING_LEVEL", "warn")
	t.Setenv("POKE5E_REDIS_ADDR", "cache:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("POKE5E_LOGGING_FORMAT", "xml")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.PokeAPI.BaseURL = ""
	cfg.PokeAPI.HTTPTimeout = 0
	cfg.DND5e.HTTPTimeout = 0
	cfg.Redis.DB = -1

	err := cfg.Validate()
	require.Error(t, err)

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	assert.Contains(t, validationErrors, "pokeapi.base_url")
	assert.Contains(t, validationErrors, "pokeapi.http_timeout")
	assert.Contains(t, validationErrors, "dnd5e.http_timeout")
	assert.Contains(t, validationErrors, "redis.db")
}

func TestPropertyMaxParallelRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-100, 200).Draw(t, "max_parallel")
		cfg := validConfig()
		cfg.PokeAPI.MaxParallel = n
		err := cfg.Validate()
		if n >= 1 && n <= 64 {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	})
}
