// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/pokemon-5e/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
)

// Challenge rating bounds accepted by ListMonstersByChallengeRating
const (
	MinChallengeRating = 0
	MaxChallengeRating = 30
)

// Client defines the reference lookups used to put a converted creature in
// context
type Client interface {
	// ListMonstersByChallengeRating returns official monsters at exactly cr,
	// ordered by key. Monsters whose details fail to load are skipped.
	ListMonstersByChallengeRating(ctx context.Context, cr int) ([]*MonsterData, error)

	// ListDamageTypes returns the official damage types, ordered by key
	ListDamageTypes(ctx context.Context) ([]*DamageTypeData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
	maxMonsters int
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// MaxMonsters caps how many monster details one lookup loads (optional, defaults to 5)
	MaxMonsters int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.MaxMonsters <= 0 {
		cfg.MaxMonsters = 5
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// Reference data rarely changes
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
		maxMonsters: cfg.MaxMonsters,
	}, nil
}

func (c *client) ListMonstersByChallengeRating(ctx context.Context, cr int) ([]*MonsterData, error) {
	if cr < MinChallengeRating || cr > MaxChallengeRating {
		return nil, errors.InvalidArgumentf("challenge rating must be between %d and %d, got %d",
			MinChallengeRating, MaxChallengeRating, cr)
	}

	rating := float64(cr)
	refs, err := c.dnd5eClient.ListMonstersWithFilter(&dnd5e.ListMonstersInput{
		ChallengeRating: &rating,
	})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to list monsters for CR %d", cr)
	}

	refs = sortedRefs(refs)

	monsters := make([]*MonsterData, 0, min(len(refs), c.maxMonsters))
	for _, ref := range refs {
		if len(monsters) >= c.maxMonsters {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.FromContext(err), "monster lookup interrupted")
		}

		monster, err := c.dnd5eClient.GetMonster(ref.Key)
		if err != nil {
			slog.WarnContext(ctx, "failed to get monster", "key", ref.Key, "error", err)
			continue
		}
		if monster == nil {
			continue
		}

		monsters = append(monsters, convertMonster(monster))
	}

	return monsters, nil
}

func (c *client) ListDamageTypes(_ context.Context) ([]*DamageTypeData, error) {
	refs, err := c.dnd5eClient.ListDamageTypes()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list damage types")
	}

	refs = sortedRefs(refs)

	damageTypes := make([]*DamageTypeData, 0, len(refs))
	for _, ref := range refs {
		damageTypes = append(damageTypes, &DamageTypeData{
			Key:  ref.Key,
			Name: ref.Name,
		})
	}

	return damageTypes, nil
}

func convertMonster(monster *entities.Monster) *MonsterData {
	return &MonsterData{
		Key:             monster.Key,
		Name:            monster.Name,
		Type:            monster.Type,
		ArmorClass:      int(monster.ArmorClass),
		HitPoints:       int(monster.HitPoints),
		HitDice:         monster.HitDice,
		ChallengeRating: float64(monster.ChallengeRating),
	}
}

// sortedRefs drops empty references and orders the rest by key so results
// are stable across cache refreshes
func sortedRefs(refs []*entities.ReferenceItem) []*entities.ReferenceItem {
	out := make([]*entities.ReferenceItem, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Key, out[j].Key) < 0
	})
	return out
}
