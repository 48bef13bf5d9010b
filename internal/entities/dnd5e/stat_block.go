// Package dnd5e holds the 5e-side records produced by the conversion
package dnd5e

// Ability score keys used when rendering or iterating scores in order
const (
	AbilityStrength     = "STR"
	AbilityDexterity    = "DEX"
	AbilityConstitution = "CON"
	AbilityIntelligence = "INT"
	AbilityWisdom       = "WIS"
	AbilityCharisma     = "CHA"
)

// AbilityOrder is the conventional stat block ordering
var AbilityOrder = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityScores holds the six converted ability scores
type AbilityScores struct {
	STR int `json:"str"`
	DEX int `json:"dex"`
	CON int `json:"con"`
	INT int `json:"int"`
	WIS int `json:"wis"`
	CHA int `json:"cha"`
}

// Get returns the score for an ability key, or 0 for an unknown key
func (a AbilityScores) Get(ability string) int {
	switch ability {
	case AbilityStrength:
		return a.STR
	case AbilityDexterity:
		return a.DEX
	case AbilityConstitution:
		return a.CON
	case AbilityIntelligence:
		return a.INT
	case AbilityWisdom:
		return a.WIS
	case AbilityCharisma:
		return a.CHA
	default:
		return 0
	}
}

// StatBlock is the derived snapshot for one creature at one source level.
// A new StatBlock supersedes the old one; it is never mutated.
type StatBlock struct {
	Name             string        `json:"name"`
	SourceLevel      int           `json:"source_level"`
	Types            []string      `json:"types"`
	AbilityScores    AbilityScores `json:"ability_scores"`
	ArmorClass       int           `json:"armor_class"`
	HitPoints        int           `json:"hit_points"`
	HitDieCount      int           `json:"hit_die_count"`
	HitDieSize       int           `json:"hit_die_size"`
	TargetLevel      int           `json:"target_level"`
	ProficiencyBonus int           `json:"proficiency_bonus"`
	AttackBonus      int           `json:"attack_bonus"`
}

// ConvertedMove is a move expressed in 5e terms. Dice is empty for status
// moves and for moves whose power falls outside every damage range.
type ConvertedMove struct {
	Name        string `json:"name"`
	SourceType  string `json:"source_type"`
	DamageClass string `json:"damage_class"`
	Power       *int   `json:"power,omitempty"`
	Accuracy    *int   `json:"accuracy,omitempty"`
	DamageType  string `json:"damage_type"`
	Dice        string `json:"dice,omitempty"`
	IsStab      bool   `json:"is_stab"`
}

// HasDice reports whether the move carries a damage expression
func (m *ConvertedMove) HasDice() bool {
	return m.Dice != ""
}

// DifficultyEstimate is recomputed for every change to the selected moves
type DifficultyEstimate struct {
	DamagePerRound  float64 `json:"damage_per_round"`
	ChallengeRating int     `json:"challenge_rating"`
}
