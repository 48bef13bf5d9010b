package engine

import "math"

// HitPoints is the result of a hit point calculation
type HitPoints struct {
	Points   int
	DieCount int
	DieSize  int
}

// HitDieSize picks a hit die from base HP
func HitDieSize(baseHP int) int {
	switch {
	case baseHP <= 45:
		return 6
	case baseHP <= 80:
		return 8
	case baseHP <= 110:
		return 10
	default:
		return 12
	}
}

// ComputeHP returns expected hit points. The product is floored once; the
// per-die average is never floored on its own.
func ComputeHP(baseHP, conScore, sourceLevel int) HitPoints {
	dieCount := ToTargetLevel(sourceLevel)
	dieSize := HitDieSize(baseHP)
	avg := float64(dieSize)/2 + 0.5

	return HitPoints{
		Points:   int(math.Floor((avg + float64(Modifier(conScore))) * float64(dieCount))),
		DieCount: dieCount,
		DieSize:  dieSize,
	}
}
