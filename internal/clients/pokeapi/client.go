// Package pokeapi fetches creature and move records from PokeAPI
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokemon-5e/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/repositories/records"
)

// maxBodyBytes caps a single upstream document
const maxBodyBytes = 8 << 20

// Client defines the source-data lookups the converter needs
type Client interface {
	// GetCreature fetches a creature by name, including its species flavor text
	GetCreature(ctx context.Context, name string) (*pokemon.Creature, error)

	// GetMove fetches one move by URL or by name
	GetMove(ctx context.Context, ref string) (*pokemon.Move, error)

	// GetMoves fetches several moves in parallel. The result is in ref order;
	// any failure fails the whole call.
	GetMoves(ctx context.Context, refs []string) ([]*pokemon.Move, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for cached documents (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// MaxParallel bounds concurrent move fetches (optional, defaults to 8)
	MaxParallel int
	// Cache stores raw documents (optional, defaults to an in-memory cache)
	Cache records.Repository
	// HTTPClient overrides the default client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pokeapi.co/api/v2/"
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = records.DefaultTTL
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = 8
	}
	if cfg.Cache == nil {
		cfg.Cache = records.NewInMemory(nil)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return nil
}

type client struct {
	baseURL     string
	httpClient  *http.Client
	cache       records.Repository
	cacheTTL    time.Duration
	maxParallel int
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		baseURL:     cfg.BaseURL,
		httpClient:  cfg.HTTPClient,
		cache:       cfg.Cache,
		cacheTTL:    cfg.CacheTTL,
		maxParallel: cfg.MaxParallel,
	}, nil
}

func (c *client) GetCreature(ctx context.Context, name string) (*pokemon.Creature, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	creatureURL, err := url.JoinPath(c.baseURL, "pokemon", name)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build creature url")
	}

	var resp pokemonResponse
	if err := c.fetch(ctx, creatureURL, &resp); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("creature %q not found", name).WithMeta("url", creatureURL)
		}
		return nil, errors.Wrapf(err, "failed to get creature %s", name)
	}

	creature := resp.toCreature()

	if resp.Species.URL != "" {
		var species speciesResponse
		err := c.fetch(ctx, resp.Species.URL, &species)
		switch {
		case err == nil:
			creature.FlavorText = species.flavorText()
		case errors.IsNotFound(err):
			slog.WarnContext(ctx, "species record missing", "creature", name, "url", resp.Species.URL)
		default:
			return nil, errors.Wrapf(err, "failed to get species for %s", name)
		}
	}

	return creature, nil
}

func (c *client) GetMove(ctx context.Context, ref string) (*pokemon.Move, error) {
	moveURL, err := c.moveURL(ref)
	if err != nil {
		return nil, err
	}

	var resp moveResponse
	if err := c.fetch(ctx, moveURL, &resp); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("move %q not found", ref).WithMeta("url", moveURL)
		}
		return nil, errors.Wrapf(err, "failed to get move %s", ref)
	}

	return resp.toMove(), nil
}

func (c *client) GetMoves(ctx context.Context, refs []string) ([]*pokemon.Move, error) {
	moves := make([]*pokemon.Move, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxParallel)

	for i, ref := range refs {
		g.Go(func() error {
			move, err := c.GetMove(gctx, ref)
			if err != nil {
				return err
			}
			moves[i] = move
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return moves, nil
}

// moveURL accepts either an absolute move URL or a bare move name
func (c *client) moveURL(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.InvalidArgument("move reference is required")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	slug := strings.ReplaceAll(strings.ToLower(ref), " ", "-")
	moveURL, err := url.JoinPath(c.baseURL, "move", slug)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build move url")
	}
	return moveURL, nil
}

// fetch decodes the document at rawURL into v, serving from the record
// cache when possible and filling it on a miss.
func (c *client) fetch(ctx context.Context, rawURL string, v any) error {
	cached, err := c.cache.Get(ctx, records.GetInput{URL: rawURL})
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(cached.Record.Body, v); jsonErr == nil {
			slog.DebugContext(ctx, "record cache hit", "url", rawURL)
			return nil
		}
		slog.WarnContext(ctx, "discarding undecodable cached record", "url", rawURL)
	case !errors.IsNotFound(err):
		slog.WarnContext(ctx, "record cache unavailable", "url", rawURL, "error", err)
	}

	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode response").
			WithMeta("url", rawURL)
	}

	if _, err := c.cache.Put(ctx, records.PutInput{URL: rawURL, Body: body, TTL: c.cacheTTL}); err != nil {
		slog.WarnContext(ctx, "failed to cache record", "url", rawURL, "error", err)
	}

	return nil
}

func (c *client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.FromContext(err), "request failed").
			WithMeta("url", rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if code := errors.FromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, errors.Newf(code, "pokeapi returned %d", resp.StatusCode).
			WithMeta("url", rawURL).
			WithMeta("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.FromContext(err), "failed to read response").
			WithMeta("url", rawURL)
	}

	slog.DebugContext(ctx, "fetched record", "url", rawURL, "bytes", len(body))
	return body, nil
}
