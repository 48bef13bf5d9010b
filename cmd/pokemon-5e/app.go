package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokemon-5e/internal/clients/external"
	"github.com/KirkDiggler/pokemon-5e/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-5e/internal/config"
	converterorchestrator "github.com/KirkDiggler/pokemon-5e/internal/orchestrators/converter"
	"github.com/KirkDiggler/pokemon-5e/internal/orchestrators/dice"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-5e/internal/redis"
	"github.com/KirkDiggler/pokemon-5e/internal/repositories/records"
	"github.com/KirkDiggler/pokemon-5e/internal/services/converter"
)

// app holds the services the commands drive and where they print
type app struct {
	converter converter.Service
	dice      dice.Service
	out       io.Writer
}

// newApp wires clients, cache and orchestrators from loaded config
func newApp(cfg config.Config, out io.Writer) (*app, error) {
	cache, err := newRecordCache(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to create record cache: %w", err)
	}

	pokeAPIClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.HTTPTimeout,
		CacheTTL:    cfg.PokeAPI.CacheTTL,
		MaxParallel: cfg.PokeAPI.MaxParallel,
		Cache:       cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	externalClient, err := external.New(&external.Config{
		BaseURL:     cfg.DND5e.BaseURL,
		HTTPTimeout: cfg.DND5e.HTTPTimeout,
		CacheTTL:    cfg.DND5e.CacheTTL,
		MaxMonsters: cfg.DND5e.MaxMonsters,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dnd5e client: %w", err)
	}

	converterService, err := converterorchestrator.New(&converterorchestrator.Config{
		PokeAPIClient:  pokeAPIClient,
		ExternalClient: externalClient,
		IDGenerator:    idgen.NewUUID("sess"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create converter: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		Roller:      rpgdice.DefaultRoller,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	return &app{
		converter: converterService,
		dice:      diceService,
		out:       out,
	}, nil
}

// newRecordCache picks Redis when an address is configured
func newRecordCache(cfg config.RedisConfig) (records.Repository, error) {
	if !cfg.Enabled() {
		slog.Debug("Using in-memory record cache")
		return records.NewInMemory(clock.New()), nil
	}

	client, err := redis.NewClient(cfg.Addr, &redis.Options{
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Using redis record cache", "addr", cfg.Addr, "db", cfg.DB)

	return records.NewRedis(&records.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
}

// sessionOptions are the flags shared by every command that builds a session
type sessionOptions struct {
	name  string
	level int
	moves []string
	shiny bool
}

// startSession generates a session and selects any requested moves.
// Rejected selections are reported but do not fail the command.
func (a *app) startSession(ctx context.Context, opts *sessionOptions) (*converter.GenerateOutput, error) {
	generated, err := a.converter.Generate(ctx, &converter.GenerateInput{
		Name:  opts.name,
		Level: opts.level,
		Shiny: opts.shiny,
	})
	if err != nil {
		return nil, err
	}

	if len(opts.moves) == 0 {
		return generated, nil
	}

	selected, err := a.converter.SelectMoves(ctx, &converter.SelectMovesInput{
		Session: generated.Session,
		Refs:    opts.moves,
	})
	if err != nil {
		return nil, err
	}

	for _, r := range selected.Rejected {
		fmt.Fprintf(a.out, "Skipped %s: %s\n", r.Name, r.Reason)
	}

	generated.Session = selected.Session
	return generated, nil
}
