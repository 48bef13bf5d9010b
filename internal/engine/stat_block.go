package engine

import (
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

// BuildStatBlock derives the full stat block for a creature at a source level
func BuildStatBlock(creature *pokemon.Creature, sourceLevel int) *dnd5e.StatBlock {
	scores := ConvertAbilities(creature.Stats)
	hp := ComputeHP(creature.Stats.HP, scores.CON, sourceLevel)
	proficiency := ProficiencyBonus(hp.DieCount)

	types := make([]string, len(creature.Types))
	copy(types, creature.Types)

	return &dnd5e.StatBlock{
		Name:             creature.Name,
		SourceLevel:      sourceLevel,
		Types:            types,
		AbilityScores:    scores,
		ArmorClass:       ArmorClass(Modifier(scores.DEX), creature.Types),
		HitPoints:        hp.Points,
		HitDieCount:      hp.DieCount,
		HitDieSize:       hp.DieSize,
		TargetLevel:      hp.DieCount,
		ProficiencyBonus: proficiency,
		AttackBonus:      AttackBonus(proficiency, scores),
	}
}
