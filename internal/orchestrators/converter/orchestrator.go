// Package converter implements the converter orchestrator
package converter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pokemon-5e/internal/clients/external"
	"github.com/KirkDiggler/pokemon-5e/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-5e/internal/engine"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-5e/internal/services/converter"
	"github.com/KirkDiggler/pokemon-5e/internal/session"
)

// descriptorSeparator joins the parts of a composite damage descriptor
const descriptorSeparator = "/"

// Config holds the dependencies for the converter orchestrator
type Config struct {
	PokeAPIClient  pokeapi.Client
	ExternalClient external.Client
	IDGenerator    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.PokeAPIClient == nil {
		vb.RequiredField("PokeAPIClient")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the converter.Service interface
type Orchestrator struct {
	pokeAPIClient  pokeapi.Client
	externalClient external.Client
	idGen          idgen.Generator
}

// New creates a new converter orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		pokeAPIClient:  cfg.PokeAPIClient,
		externalClient: cfg.ExternalClient,
		idGen:          cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ converter.Service = (*Orchestrator)(nil)

// Generate fetches a creature and starts a session at the given level
func (o *Orchestrator) Generate(ctx context.Context, input *converter.GenerateInput) (*converter.GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("level", input.Level, converter.MinLevel, converter.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	creature, err := o.pokeAPIClient.GetCreature(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %q", input.Name)
	}

	sess := session.New(o.idGen.Generate(), creature, input.Level)

	slog.InfoContext(ctx, "Session generated",
		"session_id", sess.ID,
		"creature", creature.Name,
		"source_level", input.Level,
		"target_level", sess.StatBlock.TargetLevel,
	)

	return &converter.GenerateOutput{
		Session:  sess,
		Learnset: sess.Learnset(),
		Sprite:   creature.Sprite(input.Shiny),
	}, nil
}

// SelectMoves fetches and converts the referenced moves, then selects them
// in order. Duplicates and moves beyond capacity are reported as rejected.
func (o *Orchestrator) SelectMoves(ctx context.Context, input *converter.SelectMovesInput) (*converter.SelectMovesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	sess := input.Session
	output := &converter.SelectMovesOutput{}

	// Duplicates and overflow are rejected before the fetch so they cost no
	// upstream calls. The post-fetch check still catches refs whose name is
	// only known once the move is loaded.
	remaining := session.MaxSelectedMoves - sess.Len()
	pending := make(map[string]bool)
	refs := make([]string, 0, len(input.Refs))
	blank := true
	for _, raw := range input.Refs {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		blank = false

		ref, name := resolveMoveRef(sess.Creature, raw)
		rejectAs := name
		if rejectAs == "" {
			rejectAs = ref
		}

		switch {
		case name != "" && (sess.IsSelected(name) || pending[name]):
			output.Rejected = append(output.Rejected, converter.RejectedMove{
				Name:   rejectAs,
				Reason: converter.RejectReasonDuplicate,
			})
		case len(refs) >= remaining:
			output.Rejected = append(output.Rejected, converter.RejectedMove{
				Name:   rejectAs,
				Reason: converter.RejectReasonFull,
			})
		default:
			if name != "" {
				pending[name] = true
			}
			refs = append(refs, ref)
		}
	}
	if blank {
		return nil, errors.InvalidArgument("at least one move is required")
	}

	if len(refs) == 0 {
		output.Session = sess
		slog.InfoContext(ctx, "No moves to fetch",
			"session_id", sess.ID,
			"rejected", len(output.Rejected),
			"total", sess.Len(),
		)
		return output, nil
	}

	// All moves are fetched before any selection so a failed fetch leaves
	// the session untouched.
	moves, err := o.pokeAPIClient.GetMoves(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get moves")
	}

	for _, move := range moves {
		converted := engine.ConvertMove(move, sess.Creature.Types)

		next, ok := sess.Select(converted)
		if !ok {
			reason := converter.RejectReasonFull
			if sess.IsSelected(converted.Name) {
				reason = converter.RejectReasonDuplicate
			}
			output.Rejected = append(output.Rejected, converter.RejectedMove{
				Name:   converted.Name,
				Reason: reason,
			})
			continue
		}

		sess = next
		output.Selected = append(output.Selected, converted)
	}

	output.Session = sess

	slog.InfoContext(ctx, "Moves selected",
		"session_id", sess.ID,
		"selected", len(output.Selected),
		"rejected", len(output.Rejected),
		"total", sess.Len(),
	)

	return output, nil
}

// DeselectMove removes a move by name. The name may be given as a slug.
func (o *Orchestrator) DeselectMove(_ context.Context, input *converter.DeselectMoveInput) (*converter.DeselectMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	next, removed := input.Session.Deselect(normalizeMoveName(input.Name))

	return &converter.DeselectMoveOutput{
		Session: next,
		Removed: removed,
	}, nil
}

// Evaluate computes the stat block summary and difficulty for a session
func (o *Orchestrator) Evaluate(_ context.Context, input *converter.EvaluateInput) (*converter.EvaluateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	return &converter.EvaluateOutput{
		Evaluation: input.Session.Evaluate(),
	}, nil
}

// CompareMonsters lists official monsters at the session's estimated CR
func (o *Orchestrator) CompareMonsters(ctx context.Context, input *converter.CompareMonstersInput) (*converter.CompareMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	cr := input.Session.Evaluate().Estimate.ChallengeRating

	monsters, err := o.externalClient.ListMonstersByChallengeRating(ctx, cr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monsters at CR %d", cr)
	}

	slog.DebugContext(ctx, "Comparable monsters found",
		"session_id", input.Session.ID,
		"challenge_rating", cr,
		"count", len(monsters),
	)

	return &converter.CompareMonstersOutput{
		ChallengeRating: cr,
		Monsters:        monsters,
	}, nil
}

// DescribeDamageTypes marks which parts of each selected move's descriptor
// are official damage types
func (o *Orchestrator) DescribeDamageTypes(
	ctx context.Context,
	input *converter.DescribeDamageTypesInput,
) (*converter.DescribeDamageTypesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	damageTypes, err := o.externalClient.ListDamageTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list damage types")
	}

	known := make(map[string]bool, len(damageTypes)*2)
	for _, dt := range damageTypes {
		known[strings.ToLower(dt.Key)] = true
		known[strings.ToLower(dt.Name)] = true
	}

	moves := input.Session.Moves()
	output := &converter.DescribeDamageTypesOutput{
		Moves: make([]converter.MoveDamageTypes, 0, len(moves)),
	}

	for _, m := range moves {
		output.Moves = append(output.Moves, converter.MoveDamageTypes{
			Move:       m.Name,
			Descriptor: m.DamageType,
			Parts:      describeParts(m, known),
		})
	}

	return output, nil
}

func describeParts(move *dnd5e.ConvertedMove, known map[string]bool) []converter.DescriptorPart {
	if move.DamageType == "" {
		return nil
	}

	parts := strings.Split(move.DamageType, descriptorSeparator)
	out := make([]converter.DescriptorPart, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, converter.DescriptorPart{
			Name:  p,
			Known: known[strings.ToLower(p)],
		})
	}
	return out
}

func validateSession(sess *session.Session) error {
	if sess == nil || sess.Creature == nil || sess.StatBlock == nil {
		return errors.InvalidArgument("session is required")
	}
	return nil
}

// resolveMoveRef swaps a move name the creature knows for its reference URL
// so the fetch hits the same cache entry as the creature's move list
// resolveMoveRef maps a ref to the learnset URL when the creature knows the
// move. name is the display name when it can be told without a fetch, and
// empty for a URL outside the learnset.
func resolveMoveRef(creature *pokemon.Creature, ref string) (resolved, name string) {
	ref = strings.TrimSpace(ref)
	slug := strings.ReplaceAll(strings.ToLower(ref), " ", "-")

	for _, m := range creature.Moves {
		if m.URL == "" {
			continue
		}
		if m.Name == slug || m.URL == ref {
			return m.URL, pokemon.DisplayName(m.Name)
		}
	}
	if strings.Contains(ref, "/") {
		return ref, ""
	}
	return ref, pokemon.DisplayName(slug)
}

func normalizeMoveName(name string) string {
	return pokemon.DisplayName(strings.ToLower(strings.TrimSpace(name)))
}
