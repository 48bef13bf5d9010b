package dice

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
)

// Roll is the outcome of one dice roll for an entity
type Roll struct {
	RollID      string
	EntityID    string
	Notation    string // as rolled, e.g. "4d6" or "1d20+5"
	Dice        []int
	Modifier    int
	Total       int
	Description string
}

// RollMoveDamageInput defines the request for rolling a move's damage
type RollMoveDamageInput struct {
	Entity core.Entity
	Move   *dnd5e.ConvertedMove
}

// RollMoveDamageOutput defines the response for rolling a move's damage
type RollMoveDamageOutput struct {
	Roll *Roll
}

// RollAttackInput defines the request for an attack roll
type RollAttackInput struct {
	Entity      core.Entity
	AttackBonus int
}

// RollAttackOutput defines the response for an attack roll
type RollAttackOutput struct {
	Roll     *Roll
	Critical bool // natural 20
	Fumble   bool // natural 1
}
