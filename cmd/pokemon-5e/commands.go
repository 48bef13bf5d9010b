package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-5e/internal/engine"
	"github.com/KirkDiggler/pokemon-5e/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/orchestrators/dice"
	"github.com/KirkDiggler/pokemon-5e/internal/services/converter"
)

const defaultLevel = 5

var (
	convertOpts  sessionOptions
	learnsetOpts sessionOptions
	rollOpts     sessionOptions
	compareOpts  sessionOptions
)

var convertCmd = &cobra.Command{
	Use:   "convert NAME",
	Short: "Print the converted stat block",
	Long: `Convert a Pokémon at the given level and print its stat block. Examples:

  convert pikachu --level 25
  convert charizard --level 50 --move flamethrower --move wing-attack`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		convertOpts.name = args[0]
		return current.convert(cmd.Context(), &convertOpts)
	},
}

var learnsetCmd = &cobra.Command{
	Use:   "learnset NAME",
	Short: "List the level-up moves available at a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnsetOpts.name = args[0]
		return current.learnset(cmd.Context(), &learnsetOpts)
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll NAME",
	Short: "Roll a sample attack and damage for each selected move",
	Long: `Roll a d20 attack with the converted attack bonus, then each move's damage. Example:

  roll pikachu --level 25 --move thunderbolt --move quick-attack`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rollOpts.name = args[0]
		return current.roll(cmd.Context(), &rollOpts)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare NAME",
	Short: "List official monsters at the estimated challenge rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		compareOpts.name = args[0]
		return current.compare(cmd.Context(), &compareOpts)
	},
}

func init() {
	addSessionFlags(convertCmd, &convertOpts, true)
	addSessionFlags(learnsetCmd, &learnsetOpts, false)
	addSessionFlags(rollCmd, &rollOpts, true)
	addSessionFlags(compareCmd, &compareOpts, true)
}

func addSessionFlags(cmd *cobra.Command, opts *sessionOptions, withMoves bool) {
	cmd.Flags().IntVar(&opts.level, "level", defaultLevel, "Source level (1-100)")
	cmd.Flags().BoolVar(&opts.shiny, "shiny", false, "Show the shiny sprite")
	if withMoves {
		cmd.Flags().StringArrayVar(&opts.moves, "move", nil, "Move to select, by name or URL (repeatable, up to 6)")
	}
}

func (a *app) convert(ctx context.Context, opts *sessionOptions) error {
	generated, err := a.startSession(ctx, opts)
	if err != nil {
		return err
	}

	evaluated, err := a.converter.Evaluate(ctx, &converter.EvaluateInput{Session: generated.Session})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, evaluated.Evaluation.Summary)
	if generated.Sprite != "" {
		fmt.Fprintf(a.out, "\nSprite: %s\n", generated.Sprite)
	}

	return nil
}

func (a *app) learnset(ctx context.Context, opts *sessionOptions) error {
	generated, err := a.startSession(ctx, opts)
	if err != nil {
		return err
	}

	creature := generated.Session.Creature
	fmt.Fprintf(a.out, "%s (Lv %d)\n", strings.ToUpper(creature.Name), opts.level)
	for _, t := range creature.Types {
		fmt.Fprintf(a.out, "%s → %s\n", t, engine.DamageTypeFor(t))
	}
	if creature.FlavorText != "" {
		fmt.Fprintf(a.out, "\n%s\n", creature.FlavorText)
	}
	if generated.Sprite != "" {
		fmt.Fprintf(a.out, "Sprite: %s\n", generated.Sprite)
	}

	fmt.Fprintln(a.out, "\nLearnset")
	if len(generated.Learnset) == 0 {
		fmt.Fprintln(a.out, "  (no moves learned by this level)")
		return nil
	}
	for _, entry := range generated.Learnset {
		fmt.Fprintf(a.out, "  Lv %3d  %s\n", entry.Level, pokemon.DisplayName(entry.Name))
	}

	return nil
}

func (a *app) roll(ctx context.Context, opts *sessionOptions) error {
	if len(opts.moves) == 0 {
		return errors.InvalidArgument("at least one --move is required to roll damage")
	}

	generated, err := a.startSession(ctx, opts)
	if err != nil {
		return err
	}

	sess := generated.Session
	entity := rpgtoolkit.WrapSession(sess)

	attack, err := a.dice.RollAttack(ctx, &dice.RollAttackInput{
		Entity:      entity,
		AttackBonus: sess.StatBlock.AttackBonus,
	})
	if err != nil {
		return err
	}

	switch {
	case attack.Critical:
		fmt.Fprintf(a.out, "Attack: %s (critical hit)\n", attack.Roll.Description)
	case attack.Fumble:
		fmt.Fprintf(a.out, "Attack: %s (natural 1)\n", attack.Roll.Description)
	default:
		fmt.Fprintf(a.out, "Attack: %s\n", attack.Roll.Description)
	}

	for _, m := range sess.Moves() {
		if !m.HasDice() {
			fmt.Fprintf(a.out, "%s: no damage roll\n", m.Name)
			continue
		}

		rolled, err := a.dice.RollMoveDamage(ctx, &dice.RollMoveDamageInput{
			Entity: entity,
			Move:   m,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Damage: %s\n", rolled.Roll.Description)
	}

	return nil
}

func (a *app) compare(ctx context.Context, opts *sessionOptions) error {
	generated, err := a.startSession(ctx, opts)
	if err != nil {
		return err
	}

	compared, err := a.converter.CompareMonsters(ctx, &converter.CompareMonstersInput{Session: generated.Session})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Estimated CR: %d\n\nComparable monsters\n", compared.ChallengeRating)
	if len(compared.Monsters) == 0 {
		fmt.Fprintln(a.out, "  (none found)")
	}
	for _, m := range compared.Monsters {
		fmt.Fprintf(a.out, "  %-24s AC %2d  HP %3d (%s)  %s\n", m.Name, m.ArmorClass, m.HitPoints, m.HitDice, m.Type)
	}

	if generated.Session.Len() == 0 {
		return nil
	}

	described, err := a.converter.DescribeDamageTypes(ctx, &converter.DescribeDamageTypesInput{Session: generated.Session})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nDamage types (* not an official 5e damage type)")
	for _, m := range described.Moves {
		parts := make([]string, len(m.Parts))
		for i, p := range m.Parts {
			parts[i] = p.Name
			if !p.Known {
				parts[i] += "*"
			}
		}
		fmt.Fprintf(a.out, "  %s: %s\n", m.Move, strings.Join(parts, "/"))
	}

	return nil
}
