package external

// MonsterData is an official stat block summary used for comparison
type MonsterData struct {
	Key             string
	Name            string
	Type            string
	ArmorClass      int
	HitPoints       int
	HitDice         string
	ChallengeRating float64
}

// DamageTypeData is one of the target system's damage types
type DamageTypeData struct {
	Key  string
	Name string
}
