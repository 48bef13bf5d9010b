package pokeapi

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

// namedResource is PokeAPI's {name, url} reference
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonResponse struct {
	Name  string `json:"name"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		FrontShiny   string `json:"front_shiny"`
	} `json:"sprites"`
	Species namedResource `json:"species"`
	Moves   []struct {
		Move                namedResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int           `json:"level_learned_at"`
			MoveLearnMethod namedResource `json:"move_learn_method"`
		} `json:"version_group_details"`
	} `json:"moves"`
}

type speciesResponse struct {
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
}

type moveResponse struct {
	Name        string        `json:"name"`
	Power       *int          `json:"power"`
	Accuracy    *int          `json:"accuracy"`
	Type        namedResource `json:"type"`
	DamageClass namedResource `json:"damage_class"`
}

const flavorLanguage = "en"

func (r *pokemonResponse) toCreature() *pokemon.Creature {
	creature := &pokemon.Creature{
		Name: r.Name,
		Sprites: pokemon.Sprites{
			FrontDefault: r.Sprites.FrontDefault,
			FrontShiny:   r.Sprites.FrontShiny,
		},
	}

	for _, s := range r.Stats {
		creature.Stats.Set(s.Stat.Name, s.BaseStat)
	}

	slots := r.Types
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })
	creature.Types = make([]string, 0, len(slots))
	for _, t := range slots {
		creature.Types = append(creature.Types, t.Type.Name)
	}

	creature.Moves = make([]pokemon.LearnableMove, 0, len(r.Moves))
	for _, m := range r.Moves {
		details := make([]pokemon.LearnDetail, 0, len(m.VersionGroupDetails))
		for _, d := range m.VersionGroupDetails {
			details = append(details, pokemon.LearnDetail{
				Level:  d.LevelLearnedAt,
				Method: d.MoveLearnMethod.Name,
			})
		}
		creature.Moves = append(creature.Moves, pokemon.LearnableMove{
			Name:    m.Move.Name,
			URL:     m.Move.URL,
			Details: details,
		})
	}

	return creature
}

// flavorText returns the first English entry with whitespace runs collapsed
func (r *speciesResponse) flavorText() string {
	for _, e := range r.FlavorTextEntries {
		if e.Language.Name == flavorLanguage {
			return strings.Join(strings.Fields(e.FlavorText), " ")
		}
	}
	return ""
}

func (r *moveResponse) toMove() *pokemon.Move {
	return &pokemon.Move{
		Name:        pokemon.DisplayName(r.Name),
		Power:       r.Power,
		Accuracy:    r.Accuracy,
		Type:        r.Type.Name,
		DamageClass: r.DamageClass.Name,
	}
}
