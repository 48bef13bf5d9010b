package engine

import (
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

// DamageTypeFor maps an elemental type to a 5e damage descriptor. Unmapped
// types pass through unchanged.
func DamageTypeFor(elementalType string) string {
	if descriptor, ok := elementalTypeMap[elementalType]; ok {
		return descriptor
	}
	return elementalType
}

// DamageDice maps base power to a dice expression. It returns "" when power
// is nil or outside every range.
func DamageDice(power *int) string {
	if power == nil {
		return ""
	}
	dice, _ := basePowerToDamage.lookup(*power)
	return dice
}

// ConvertMove expresses a move in 5e terms for a creature with the given types
func ConvertMove(move *pokemon.Move, creatureTypes []string) *dnd5e.ConvertedMove {
	converted := &dnd5e.ConvertedMove{
		Name:        move.Name,
		SourceType:  move.Type,
		DamageClass: move.DamageClass,
		Power:       copyInt(move.Power),
		Accuracy:    copyInt(move.Accuracy),
		DamageType:  DamageTypeFor(move.Type),
	}

	if !move.IsStatus() {
		converted.Dice = DamageDice(move.Power)
	}

	for _, t := range creatureTypes {
		if t == move.Type {
			converted.IsStab = true
			break
		}
	}

	return converted
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
