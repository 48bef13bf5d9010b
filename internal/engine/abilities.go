// Package engine converts source creature statistics into 5e stat blocks.
// Every function here is pure and safe for concurrent use.
package engine

import (
	"math"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

const (
	// DefaultAbilityScore is returned for base stats outside every range
	DefaultAbilityScore = 10

	// FixedCharisma has no source analogue
	FixedCharisma = 10
)

// ConvertStat maps a base stat to an ability score
func ConvertStat(base int) int {
	if score, ok := statToAbility.lookup(base); ok {
		return score
	}
	return DefaultAbilityScore
}

// Modifier returns the roll modifier for an ability score, flooring toward
// negative infinity so that 9 yields -1.
func Modifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// ConvertAbilities maps the six base stats onto ability scores
func ConvertAbilities(stats pokemon.BaseStats) dnd5e.AbilityScores {
	return dnd5e.AbilityScores{
		STR: ConvertStat(stats.Attack),
		DEX: ConvertStat(stats.Speed),
		CON: ConvertStat(stats.Defense),
		INT: ConvertStat(stats.SpecialAttack),
		WIS: ConvertStat(stats.SpecialDefense),
		CHA: FixedCharisma,
	}
}

// AttackBonus is proficiency plus the best of the STR, DEX and INT modifiers
func AttackBonus(proficiency int, scores dnd5e.AbilityScores) int {
	best := max(Modifier(scores.STR), Modifier(scores.DEX), Modifier(scores.INT))
	return proficiency + best
}
