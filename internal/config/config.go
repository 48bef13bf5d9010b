// Package config loads converter settings from an optional YAML file,
// POKE5E_ environment variables and CLI flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g.
// POKE5E_POKEAPI_BASE_URL.
const EnvPrefix = "POKE5E"

// PokeAPIConfig holds source-data client settings.
type PokeAPIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	// MaxParallel bounds concurrent move fetches.
	MaxParallel int `mapstructure:"max_parallel"`
}

// DND5eConfig holds reference API settings.
type DND5eConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	// MaxMonsters caps how many comparable monsters are loaded.
	MaxMonsters int `mapstructure:"max_monsters"`
}

// RedisConfig holds record cache settings. An empty Addr selects the
// in-memory cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	DND5e   DND5eConfig   `mapstructure:"dnd5e"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Validate checks every setting and reports all violations at once.
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	if c.PokeAPI.HTTPTimeout <= 0 {
		vb.Field("pokeapi.http_timeout", "must be positive")
	}
	if c.PokeAPI.CacheTTL < 0 {
		vb.Field("pokeapi.cache_ttl", "must not be negative")
	}
	errors.ValidateRange("pokeapi.max_parallel", c.PokeAPI.MaxParallel, 1, 64, vb)

	errors.ValidateRequired("dnd5e.base_url", c.DND5e.BaseURL, vb)
	if c.DND5e.HTTPTimeout <= 0 {
		vb.Field("dnd5e.http_timeout", "must be positive")
	}
	if c.DND5e.CacheTTL < 0 {
		vb.Field("dnd5e.cache_ttl", "must not be negative")
	}
	errors.ValidateRange("dnd5e.max_monsters", c.DND5e.MaxMonsters, 1, 50, vb)

	if c.Redis.DB < 0 {
		vb.Field("redis.db", "must not be negative")
	}

	errors.ValidateEnum("logging.level", c.Logging.Level, validLevels, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, validFormats, vb)

	return vb.Build()
}

// New returns a viper instance with defaults and environment overrides
// applied. Callers may bind flags to it before calling LoadFromViper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads configuration from path, if given, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2/")
	v.SetDefault("pokeapi.http_timeout", "30s")
	v.SetDefault("pokeapi.cache_ttl", "24h")
	v.SetDefault("pokeapi.max_parallel", 8)

	v.SetDefault("dnd5e.base_url", "https://www.dnd5eapi.co/api/2014/")
	v.SetDefault("dnd5e.http_timeout", "30s")
	v.SetDefault("dnd5e.cache_ttl", "24h")
	v.SetDefault("dnd5e.max_monsters", 5)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
