package engine

import "github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"

const (
	// BaseArmorClass before any modifier
	BaseArmorClass = 10

	// NaturalArmorBonus applies to rock and steel creatures
	NaturalArmorBonus = 2
)

// ArmorClass derives AC from the DEX modifier and the creature's types
func ArmorClass(dexModifier int, types []string) int {
	ac := BaseArmorClass + dexModifier
	for _, t := range types {
		if t == pokemon.TypeRock || t == pokemon.TypeSteel {
			return ac + NaturalArmorBonus
		}
	}
	return ac
}
