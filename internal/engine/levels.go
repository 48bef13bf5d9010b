package engine

import "math"

// Target level bounds
const (
	MinTargetLevel = 1
	MaxTargetLevel = 20
)

// ToTargetLevel maps a 1..100 source level onto a 1..20 level band
func ToTargetLevel(sourceLevel int) int {
	level := int(math.Ceil(float64(sourceLevel) / 5))
	return clamp(level, MinTargetLevel, MaxTargetLevel)
}

// ProficiencyBonus returns the scaling bonus for a target level
func ProficiencyBonus(targetLevel int) int {
	switch {
	case targetLevel >= 17:
		return 6
	case targetLevel >= 13:
		return 5
	case targetLevel >= 9:
		return 4
	case targetLevel >= 5:
		return 3
	default:
		return 2
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
