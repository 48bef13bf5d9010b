package engine

import "sort"

// rangeEntry maps an inclusive integer range to a value
type rangeEntry[T any] struct {
	low   int
	high  int
	value T
}

// rangeTable is an ordered set of disjoint ranges sorted by bound
type rangeTable[T any] []rangeEntry[T]

// lookup returns the value of the range containing v
func (t rangeTable[T]) lookup(v int) (T, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].high >= v })
	if i < len(t) && t[i].low <= v {
		return t[i].value, true
	}
	var zero T
	return zero, false
}

var statToAbility = rangeTable[int]{
	{low: 1, high: 40, value: 8},
	{low: 41, high: 60, value: 10},
	{low: 61, high: 80, value: 12},
	{low: 81, high: 100, value: 14},
	{low: 101, high: 120, value: 16},
	{low: 121, high: 140, value: 18},
	{low: 141, high: 160, value: 20},
	{low: 161, high: 220, value: 22},
	{low: 221, high: 999, value: 25},
}

// Damage dice expressions produced by the move converter
const (
	Dice1d6     = "1d6"
	Dice2d6     = "2d6"
	Dice3d6     = "3d6"
	Dice4d6     = "4d6"
	Dice5d6     = "5d6"
	Dice6d6Plus = "6d6+"
)

var basePowerToDamage = rangeTable[string]{
	{low: 0, high: 40, value: Dice1d6},
	{low: 41, high: 60, value: Dice2d6},
	{low: 61, high: 80, value: Dice3d6},
	{low: 81, high: 100, value: Dice4d6},
	{low: 101, high: 120, value: Dice5d6},
	{low: 121, high: 999, value: Dice6d6Plus},
}

// Expected damage per dice expression
var diceAverages = map[string]float64{
	Dice1d6:     3.5,
	Dice2d6:     7,
	Dice3d6:     10.5,
	Dice4d6:     14,
	Dice5d6:     17.5,
	Dice6d6Plus: 21,
}

// Composite descriptors such as "Poison/Slashing" are kept as-is.
var elementalTypeMap = map[string]string{
	"normal":   "Bludgeoning/Slashing",
	"fire":     "Fire",
	"water":    "Cold",
	"electric": "Lightning",
	"grass":    "Poison/Slashing",
	"ice":      "Cold",
	"fighting": "Bludgeoning",
	"poison":   "Poison",
	"ground":   "Bludgeoning",
	"flying":   "Slashing",
	"psychic":  "Psychic",
	"bug":      "Piercing",
	"rock":     "Bludgeoning",
	"ghost":    "Necrotic",
	"dragon":   "Force",
	"dark":     "Necrotic",
	"steel":    "Slashing",
	"fairy":    "Radiant",
}
