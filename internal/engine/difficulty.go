package engine

import (
	"math"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
)

const (
	// NoMoveDPR models an unarmed baseline
	NoMoveDPR = 2.0

	// DPRAttenuation scales expected damage for misses and resistances
	DPRAttenuation = 0.65

	// UnknownDiceAverage is used for dice expressions missing from the table
	UnknownDiceAverage = 3.5

	MinChallengeRating = 1
	MaxChallengeRating = 30
)

// DifficultyInput holds the four figures the rating is built from
type DifficultyInput struct {
	HP          int
	AC          int
	DPR         float64
	AttackBonus int
}

// EstimateDPR estimates damage per round from the selected moves. The first
// move with dice is used; if none has dice the first move is used.
func EstimateDPR(moves []*dnd5e.ConvertedMove) float64 {
	if len(moves) == 0 {
		return NoMoveDPR
	}

	best := moves[0]
	for _, m := range moves {
		if m.HasDice() {
			best = m
			break
		}
	}

	avg, ok := diceAverages[best.Dice]
	if !ok {
		avg = UnknownDiceAverage
	}

	return avg * DPRAttenuation
}

// CalculateDifficulty averages a defense score and an offense score and
// clamps the result to 1..30.
func CalculateDifficulty(in DifficultyInput) int {
	defense := float64(in.HP)/15 + float64(in.AC-13)*0.6
	offense := in.DPR/6 + float64(in.AttackBonus)*0.35

	// half-up, matching the source tool for negative halves too
	rating := int(math.Floor((defense+offense)/2 + 0.5))

	return clamp(rating, MinChallengeRating, MaxChallengeRating)
}

// Estimate builds a fresh difficulty estimate for a stat block and a move
// snapshot.
func Estimate(block *dnd5e.StatBlock, moves []*dnd5e.ConvertedMove) *dnd5e.DifficultyEstimate {
	dpr := EstimateDPR(moves)

	return &dnd5e.DifficultyEstimate{
		DamagePerRound: dpr,
		ChallengeRating: CalculateDifficulty(DifficultyInput{
			HP:          block.HitPoints,
			AC:          block.ArmorClass,
			DPR:         dpr,
			AttackBonus: block.AttackBonus,
		}),
	}
}
