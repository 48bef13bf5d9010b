package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
	"github.com/KirkDiggler/pokemon-5e/internal/testutils"
)

func TestCreature_Learnset(t *testing.T) {
	creature := testutils.CreateTestCreature()

	t.Run("level 5 only has starting moves", func(t *testing.T) {
		learnset := creature.Learnset(5)

		assert.Equal(t, []pokemon.LearnsetEntry{
			{Name: "thunder-shock", URL: testutils.ThunderShockURL, Level: 1},
			{Name: "growl", URL: testutils.GrowlURL, Level: 1},
		}, learnset)
	})

	t.Run("sorted by learn level", func(t *testing.T) {
		learnset := creature.Learnset(50)

		names := make([]string, len(learnset))
		for i, e := range learnset {
			names[i] = e.Name
		}
		assert.Equal(t, []string{"thunder-shock", "growl", "quick-attack", "thunderbolt"}, names)
		assert.Equal(t, 36, learnset[3].Level)
	})

	t.Run("machine moves are excluded", func(t *testing.T) {
		for _, e := range creature.Learnset(100) {
			assert.NotEqual(t, "iron-tail", e.Name)
		}
	})
}

func TestCreature_HasType(t *testing.T) {
	creature := &pokemon.Creature{Types: []string{"rock", "ground"}}

	assert.True(t, creature.HasType("rock"))
	assert.True(t, creature.HasType("ground"))
	assert.False(t, creature.HasType("water"))
}

func TestCreature_Sprite(t *testing.T) {
	creature := testutils.CreateTestCreature()

	assert.Equal(t, creature.Sprites.FrontDefault, creature.Sprite(false))
	assert.Equal(t, creature.Sprites.FrontShiny, creature.Sprite(true))
}

func TestBaseStats_Set(t *testing.T) {
	var stats pokemon.BaseStats
	stats.Set(pokemon.StatHP, 35)
	stats.Set(pokemon.StatAttack, 55)
	stats.Set(pokemon.StatDefense, 40)
	stats.Set(pokemon.StatSpecialAttack, 50)
	stats.Set(pokemon.StatSpecialDefense, 51)
	stats.Set(pokemon.StatSpeed, 90)
	stats.Set("accuracy", 100)

	assert.Equal(t, pokemon.BaseStats{
		HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 51, Speed: 90,
	}, stats)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "thunder shock", pokemon.DisplayName("thunder-shock"))
	assert.Equal(t, "double edge", pokemon.DisplayName("double-edge"))
	assert.Equal(t, "growl", pokemon.DisplayName("growl"))
}
