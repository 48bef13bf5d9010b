package records

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokemon-5e/internal/redis"
)

// Key pattern: pokeapi:record:{url}
const recordKeyPrefix = "pokeapi:record:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed record cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves a cached record by URL
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateURL(input.URL); err != nil {
		return nil, err
	}

	key := buildKey(input.URL)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("record not found").WithMeta("url", input.URL)
		}
		return nil, errors.Wrapf(err, "failed to get record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	// Redis expiry and the envelope can disagree when the clock is skewed
	if r.clock.Now().After(record.ExpiresAt) {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			slog.WarnContext(ctx, "failed to drop expired record", "url", input.URL, "error", err)
		}
		return nil, errors.NotFound("record has expired").WithMeta("url", input.URL)
	}

	return &GetOutput{Record: &record}, nil
}

// Put stores a record with its TTL
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	record, ttl, err := newRecord(input, r.clock.Now())
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	if err := r.client.Set(ctx, buildKey(input.URL), data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store record in Redis")
	}

	return &PutOutput{Record: record}, nil
}

// Delete removes a record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateURL(input.URL); err != nil {
		return nil, err
	}

	n, err := r.client.Del(ctx, buildKey(input.URL)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete record from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func buildKey(url string) string {
	return recordKeyPrefix + url
}
