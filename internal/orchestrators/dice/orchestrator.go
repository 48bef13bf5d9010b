// Package dice rolls sample damage and attack rolls for converted creatures
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/pokemon-5e/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/idgen"
)

const attackDie = 20

var (
	// Matches damage dice like "2d6" and the open-ended "6d6+"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)\+?$`)
)

// Service defines the interface for dice operations
type Service interface {
	// RollMoveDamage rolls a converted move's damage dice. Status moves
	// have no dice and are rejected.
	RollMoveDamage(ctx context.Context, input *RollMoveDamageInput) (*RollMoveDamageOutput, error)

	// RollAttack rolls a d20 plus the attack bonus
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
	}, nil
}

// parseDiceNotation parses damage notation like "2d6" and returns count and size
func parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(notation))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

func validateEntity(entity core.Entity) error {
	if entity == nil || entity.GetID() == "" {
		return errors.InvalidArgument("entity is required")
	}
	return nil
}

// RollMoveDamage rolls the dice of a converted move
func (o *orchestrator) RollMoveDamage(ctx context.Context, input *RollMoveDamageInput) (*RollMoveDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}
	if input.Move == nil {
		return nil, errors.InvalidArgument("move is required")
	}
	if !input.Move.HasDice() {
		return nil, errors.InvalidArgumentf("move %q deals no damage", input.Move.Name)
	}

	count, size, err := parseDiceNotation(input.Move.Dice)
	if err != nil {
		return nil, err
	}

	rolled, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Move.Dice)
	}

	total := 0
	for _, d := range rolled {
		total += d
	}

	roll := &Roll{
		RollID:   o.idGen.Generate(),
		EntityID: input.Entity.GetID(),
		Notation: input.Move.Dice,
		Dice:     rolled,
		Total:    total,
		Description: fmt.Sprintf("%s %dd%d%s=%d %s",
			input.Move.Name, count, size, formatDice(rolled), total, input.Move.DamageType),
	}

	slog.InfoContext(ctx, "Move damage rolled",
		"entity_id", roll.EntityID,
		"entity_type", input.Entity.GetType(),
		"move", input.Move.Name,
		"notation", roll.Notation,
		"total", roll.Total,
	)

	return &RollMoveDamageOutput{Roll: roll}, nil
}

// RollAttack rolls a d20 and adds the attack bonus
func (o *orchestrator) RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}

	natural, err := o.roller.Roll(attackDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attack")
	}

	notation := fmt.Sprintf("1d%d%+d", attackDie, input.AttackBonus)
	total := natural + input.AttackBonus

	roll := &Roll{
		RollID:      o.idGen.Generate(),
		EntityID:    input.Entity.GetID(),
		Notation:    notation,
		Dice:        []int{natural},
		Modifier:    input.AttackBonus,
		Total:       total,
		Description: fmt.Sprintf("%s[%d]=%d", notation, natural, total),
	}

	slog.InfoContext(ctx, "Attack rolled",
		"entity_id", roll.EntityID,
		"natural", natural,
		"total", total,
	)

	return &RollAttackOutput{
		Roll:     roll,
		Critical: natural == attackDie,
		Fumble:   natural == 1,
	}, nil
}

// formatDice renders individual results the way rpg-toolkit describes
// them, e.g. "[3,4]"
func formatDice(rolled []int) string {
	parts := make([]string, len(rolled))
	for i, d := range rolled {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
