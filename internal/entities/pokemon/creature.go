// Package pokemon contains the source-side records supplied by PokeAPI
package pokemon

import (
	"sort"
)

// Base stat names as PokeAPI reports them
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// Elemental types that matter to the conversion rules
const (
	TypeRock  = "rock"
	TypeSteel = "steel"
)

// LearnMethodLevelUp is the only learn method that feeds the learnset
const LearnMethodLevelUp = "level-up"

// BaseStats holds the six source stats
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Set assigns a stat by its PokeAPI name. Unknown names are ignored.
func (b *BaseStats) Set(name string, value int) {
	switch name {
	case StatHP:
		b.HP = value
	case StatAttack:
		b.Attack = value
	case StatDefense:
		b.Defense = value
	case StatSpecialAttack:
		b.SpecialAttack = value
	case StatSpecialDefense:
		b.SpecialDefense = value
	case StatSpeed:
		b.Speed = value
	}
}

// Sprites holds the front sprite URLs
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

// LearnDetail is one way a creature learns a move in one version group
type LearnDetail struct {
	Level  int    `json:"level"`
	Method string `json:"method"`
}

// LearnableMove references a move the creature can learn. URL is the
// reference used to fetch the full move record.
type LearnableMove struct {
	Name    string        `json:"name"`
	URL     string        `json:"url"`
	Details []LearnDetail `json:"details"`
}

// LearnsetEntry is a move available at the requested level
type LearnsetEntry struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Level int    `json:"level"`
}

// Creature is the read-only source record for one creature
type Creature struct {
	Name       string          `json:"name"`
	Stats      BaseStats       `json:"stats"`
	Types      []string        `json:"types"`
	Sprites    Sprites         `json:"sprites"`
	FlavorText string          `json:"flavor_text"`
	Moves      []LearnableMove `json:"moves"`
}

// HasType reports whether the creature has the given elemental type
func (c *Creature) HasType(elementalType string) bool {
	for _, t := range c.Types {
		if t == elementalType {
			return true
		}
	}
	return false
}

// Sprite returns the default or shiny front sprite
func (c *Creature) Sprite(shiny bool) string {
	if shiny {
		return c.Sprites.FrontShiny
	}
	return c.Sprites.FrontDefault
}

// Learnset returns the level-up moves learnable at or below level, ordered
// by learn level. The first qualifying detail of each move decides its level.
func (c *Creature) Learnset(level int) []LearnsetEntry {
	entries := make([]LearnsetEntry, 0, len(c.Moves))
	for _, m := range c.Moves {
		for _, d := range m.Details {
			if d.Method != LearnMethodLevelUp || d.Level > level {
				continue
			}
			entries = append(entries, LearnsetEntry{
				Name:  m.Name,
				URL:   m.URL,
				Level: d.Level,
			})
			break
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Level < entries[j].Level
	})

	return entries
}
