// Package session holds one game master's working state: a creature, the
// source level it was generated at and the moves currently selected.
// Sessions are values; every change returns a new Session.
package session

import (
	"github.com/KirkDiggler/pokemon-5e/internal/engine"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
)

// MaxSelectedMoves bounds the selected move set
const MaxSelectedMoves = 6

// Session is a creature plus its selected moves
type Session struct {
	ID          string
	Creature    *pokemon.Creature
	SourceLevel int
	StatBlock   *dnd5e.StatBlock

	// insertion ordered, unique by name
	selected []*dnd5e.ConvertedMove
}

// Evaluation is a complete, independent result for one session snapshot
type Evaluation struct {
	StatBlock *dnd5e.StatBlock
	Moves     []*dnd5e.ConvertedMove
	Estimate  *dnd5e.DifficultyEstimate
	Summary   string
}

// New starts a session with an empty move selection
func New(id string, creature *pokemon.Creature, sourceLevel int) *Session {
	return &Session{
		ID:          id,
		Creature:    creature,
		SourceLevel: sourceLevel,
		StatBlock:   engine.BuildStatBlock(creature, sourceLevel),
	}
}

// Learnset lists the level-up moves available at the session's level
func (s *Session) Learnset() []pokemon.LearnsetEntry {
	return s.Creature.Learnset(s.SourceLevel)
}

// Moves returns a snapshot of the selected moves in selection order
func (s *Session) Moves() []*dnd5e.ConvertedMove {
	out := make([]*dnd5e.ConvertedMove, len(s.selected))
	copy(out, s.selected)
	return out
}

// Len returns the number of selected moves
func (s *Session) Len() int {
	return len(s.selected)
}

// IsFull reports whether another move can be selected
func (s *Session) IsFull() bool {
	return len(s.selected) >= MaxSelectedMoves
}

// IsSelected reports whether a move with this name is selected
func (s *Session) IsSelected(name string) bool {
	return s.indexOf(name) >= 0
}

// Select adds a move. A duplicate name or a full selection is a no-op: the
// receiver is returned unchanged with ok=false.
func (s *Session) Select(move *dnd5e.ConvertedMove) (next *Session, ok bool) {
	if move == nil || s.IsFull() || s.IsSelected(move.Name) {
		return s, false
	}

	selected := make([]*dnd5e.ConvertedMove, len(s.selected), len(s.selected)+1)
	copy(selected, s.selected)

	return s.with(append(selected, move)), true
}

// Deselect removes a move by name. Removing an unselected move is a no-op.
func (s *Session) Deselect(name string) (next *Session, ok bool) {
	i := s.indexOf(name)
	if i < 0 {
		return s, false
	}

	selected := make([]*dnd5e.ConvertedMove, 0, len(s.selected)-1)
	selected = append(selected, s.selected[:i]...)
	selected = append(selected, s.selected[i+1:]...)

	return s.with(selected), true
}

// Evaluate recomputes the difficulty estimate and summary for the current
// selection. Nothing is cached.
func (s *Session) Evaluate() *Evaluation {
	moves := s.Moves()
	estimate := engine.Estimate(s.StatBlock, moves)

	return &Evaluation{
		StatBlock: s.StatBlock,
		Moves:     moves,
		Estimate:  estimate,
		Summary:   engine.FormatSummary(s.StatBlock, moves, estimate),
	}
}

func (s *Session) with(selected []*dnd5e.ConvertedMove) *Session {
	return &Session{
		ID:          s.ID,
		Creature:    s.Creature,
		SourceLevel: s.SourceLevel,
		StatBlock:   s.StatBlock,
		selected:    selected,
	}
}

func (s *Session) indexOf(name string) int {
	for i, m := range s.selected {
		if m.Name == name {
			return i
		}
	}
	return -1
}
