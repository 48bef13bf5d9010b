// Package testutils provides fixtures and Redis helpers shared by tests.
package testutils

import (
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

// Move reference URLs used by the fixtures
const (
	ThunderShockURL = "https://pokeapi.co/api/v2/move/84/"
	GrowlURL        = "https://pokeapi.co/api/v2/move/45/"
	QuickAttackURL  = "https://pokeapi.co/api/v2/move/98/"
	ThunderboltURL  = "https://pokeapi.co/api/v2/move/85/"
	IronTailURL     = "https://pokeapi.co/api/v2/move/231/"

	// TestCreatureName is the default creature for fixtures
	TestCreatureName = "pikachu"
)

func intPtr(v int) *int {
	return &v
}

// CreateTestCreature returns a pikachu record with a small move list
func CreateTestCreature() *pokemon.Creature {
	return &pokemon.Creature{
		Name: TestCreatureName,
		Stats: pokemon.BaseStats{
			HP:             35,
			Attack:         55,
			Defense:        40,
			SpecialAttack:  50,
			SpecialDefense: 50,
			Speed:          90,
		},
		Types: []string{"electric"},
		Sprites: pokemon.Sprites{
			FrontDefault: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
			FrontShiny:   "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/shiny/25.png",
		},
		FlavorText: "When several of these POKéMON gather, their electricity could build and cause lightning storms.",
		Moves: []pokemon.LearnableMove{
			{
				Name: "thunderbolt",
				URL:  ThunderboltURL,
				Details: []pokemon.LearnDetail{
					{Level: 0, Method: "machine"},
					{Level: 36, Method: pokemon.LearnMethodLevelUp},
				},
			},
			{
				Name:    "thunder-shock",
				URL:     ThunderShockURL,
				Details: []pokemon.LearnDetail{{Level: 1, Method: pokemon.LearnMethodLevelUp}},
			},
			{
				Name:    "quick-attack",
				URL:     QuickAttackURL,
				Details: []pokemon.LearnDetail{{Level: 6, Method: pokemon.LearnMethodLevelUp}},
			},
			{
				Name:    "growl",
				URL:     GrowlURL,
				Details: []pokemon.LearnDetail{{Level: 1, Method: pokemon.LearnMethodLevelUp}},
			},
			{
				Name:    "iron-tail",
				URL:     IronTailURL,
				Details: []pokemon.LearnDetail{{Level: 0, Method: "machine"}},
			},
		},
	}
}

// CreateTestMoves returns move records keyed by reference URL
func CreateTestMoves() map[string]*pokemon.Move {
	return map[string]*pokemon.Move{
		ThunderShockURL: {
			Name:        "thunder shock",
			Power:       intPtr(40),
			Accuracy:    intPtr(100),
			Type:        "electric",
			DamageClass: pokemon.DamageClassSpecial,
		},
		GrowlURL: {
			Name:        "growl",
			Accuracy:    intPtr(100),
			Type:        "normal",
			DamageClass: pokemon.DamageClassStatus,
		},
		QuickAttackURL: {
			Name:        "quick attack",
			Power:       intPtr(40),
			Accuracy:    intPtr(100),
			Type:        "normal",
			DamageClass: pokemon.DamageClassPhysical,
		},
		ThunderboltURL: {
			Name:        "thunderbolt",
			Power:       intPtr(90),
			Accuracy:    intPtr(100),
			Type:        "electric",
			DamageClass: pokemon.DamageClassSpecial,
		},
		IronTailURL: {
			Name:        "iron tail",
			Power:       intPtr(100),
			Accuracy:    intPtr(75),
			Type:        "steel",
			DamageClass: pokemon.DamageClassPhysical,
		},
	}
}
