package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokemon-5e/internal/engine"
)

func TestToTargetLevel(t *testing.T) {
	testCases := []struct {
		source   int
		expected int
	}{
		{source: 1, expected: 1},
		{source: 5, expected: 1},
		{source: 6, expected: 2},
		{source: 25, expected: 5},
		{source: 47, expected: 10},
		{source: 99, expected: 20},
		{source: 100, expected: 20},
		{source: 0, expected: 1},
		{source: 150, expected: 20},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, engine.ToTargetLevel(tc.source), "source level %d", tc.source)
	}
}

func TestProficiencyBonus(t *testing.T) {
	assert.Equal(t, 2, engine.ProficiencyBonus(engine.ToTargetLevel(1)))
	assert.Equal(t, 2, engine.ProficiencyBonus(4))
	assert.Equal(t, 3, engine.ProficiencyBonus(5))
	assert.Equal(t, 3, engine.ProficiencyBonus(8))
	assert.Equal(t, 4, engine.ProficiencyBonus(9))
	assert.Equal(t, 4, engine.ProficiencyBonus(12))
	assert.Equal(t, 5, engine.ProficiencyBonus(13))
	assert.Equal(t, 5, engine.ProficiencyBonus(16))
	assert.Equal(t, 6, engine.ProficiencyBonus(17))
	assert.Equal(t, 6, engine.ProficiencyBonus(20))
}

func TestPropertyTargetLevelInBand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.IntRange(1, 100).Draw(t, "source")
		level := engine.ToTargetLevel(source)
		if level < engine.MinTargetLevel || level > engine.MaxTargetLevel {
			t.Fatalf("ToTargetLevel(%d) = %d out of band", source, level)
		}
		if bonus := engine.ProficiencyBonus(level); bonus < 2 || bonus > 6 {
			t.Fatalf("ProficiencyBonus(%d) = %d out of range", level, bonus)
		}
	})
}
