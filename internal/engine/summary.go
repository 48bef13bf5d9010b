package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

const (
	noMovesLine = "• (No moves selected)"
	statusLabel = "Status"
	noDiceLabel = "none"
)

// FormatSummary renders the text stat block handed to the presentation layer
func FormatSummary(block *dnd5e.StatBlock, moves []*dnd5e.ConvertedMove, estimate *dnd5e.DifficultyEstimate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s (Lv %d)\n", strings.ToUpper(block.Name), block.SourceLevel)
	fmt.Fprintf(&b, "Types: %s\n\n", strings.Join(block.Types, ", "))
	fmt.Fprintf(&b, "AC %d\n", block.ArmorClass)
	fmt.Fprintf(&b, "HP %d (%dd%d)\n\n", block.HitPoints, block.HitDieCount, block.HitDieSize)

	for _, ability := range dnd5e.AbilityOrder {
		score := block.AbilityScores.Get(ability)
		fmt.Fprintf(&b, "%s %d (%d)\n", ability, score, Modifier(score))
	}

	fmt.Fprintf(&b, "\nAttack Bonus: +%d\n", block.AttackBonus)
	fmt.Fprintf(&b, "Estimated DPR: %.1f\n", estimate.DamagePerRound)
	fmt.Fprintf(&b, "Estimated CR: %d\n\n", estimate.ChallengeRating)

	b.WriteString("Moves\n")
	if len(moves) == 0 {
		b.WriteString(noMovesLine)
		return b.String()
	}

	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = fmt.Sprintf("• %s — %s | %s", m.Name, moveDamageLabel(m), m.DamageType)
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

// moveDamageLabel renders "Status" for status moves and the dice otherwise.
func moveDamageLabel(m *dnd5e.ConvertedMove) string {
	switch {
	case m.DamageClass == pokemon.DamageClassStatus:
		return statusLabel
	case m.Dice == "":
		return noDiceLabel
	}
	return m.Dice
}
