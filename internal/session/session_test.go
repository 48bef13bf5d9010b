package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokemon-5e/internal/engine"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/pokemon"
	"github.com/KirkDiggler/pokemon-5e/internal/session"
	"github.com/KirkDiggler/pokemon-5e/internal/testutils"
)

type SessionTestSuite struct {
	suite.Suite
	creature *pokemon.Creature
	moves    map[string]*pokemon.Move
	session  *session.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.creature = testutils.CreateTestCreature()
	s.moves = testutils.CreateTestMoves()
	s.session = session.New("session_1", s.creature, 25)
}

func (s *SessionTestSuite) convert(url string) *dnd5e.ConvertedMove {
	return engine.ConvertMove(s.moves[url], s.creature.Types)
}

func (s *SessionTestSuite) TestNew() {
	s.Equal("session_1", s.session.ID)
	s.Equal(25, s.session.SourceLevel)
	s.Equal(engine.BuildStatBlock(s.creature, 25), s.session.StatBlock)
	s.Equal(0, s.session.Len())
	s.Empty(s.session.Moves())
}

func (s *SessionTestSuite) TestSelect() {
	next, ok := s.session.Select(s.convert(testutils.ThunderShockURL))
	s.True(ok)
	s.Equal(1, next.Len())
	s.True(next.IsSelected("thunder shock"))

	s.Equal(0, s.session.Len(), "original session is unchanged")
}

func (s *SessionTestSuite) TestSelect_Duplicate() {
	next, ok := s.session.Select(s.convert(testutils.GrowlURL))
	s.Require().True(ok)

	again, ok := next.Select(s.convert(testutils.GrowlURL))
	s.False(ok)
	s.Same(next, again)
	s.Equal(1, again.Len())
}

func (s *SessionTestSuite) TestSelect_Nil() {
	next, ok := s.session.Select(nil)
	s.False(ok)
	s.Same(s.session, next)
}

func (s *SessionTestSuite) TestSelect_SeventhMoveRejected() {
	current := s.session
	for i := 0; i < session.MaxSelectedMoves; i++ {
		var ok bool
		current, ok = current.Select(&dnd5e.ConvertedMove{Name: fmt.Sprintf("move %d", i), Dice: "1d6"})
		s.Require().True(ok)
	}
	s.True(current.IsFull())

	before := current.Moves()
	next, ok := current.Select(&dnd5e.ConvertedMove{Name: "one too many", Dice: "6d6+"})

	s.False(ok)
	s.Equal(session.MaxSelectedMoves, next.Len())
	s.Equal(before, next.Moves())
	s.False(next.IsSelected("one too many"))
}

func (s *SessionTestSuite) TestDeselect() {
	current, _ := s.session.Select(s.convert(testutils.ThunderShockURL))
	current, _ = current.Select(s.convert(testutils.GrowlURL))
	current, _ = current.Select(s.convert(testutils.QuickAttackURL))

	next, ok := current.Deselect("growl")
	s.True(ok)
	s.Equal(2, next.Len())

	names := []string{}
	for _, m := range next.Moves() {
		names = append(names, m.Name)
	}
	s.Equal([]string{"thunder shock", "quick attack"}, names)
	s.Equal(3, current.Len(), "original session is unchanged")

	same, ok := next.Deselect("growl")
	s.False(ok)
	s.Same(next, same)
}

func (s *SessionTestSuite) TestMoves_ReturnsCopy() {
	current, _ := s.session.Select(s.convert(testutils.ThunderShockURL))

	moves := current.Moves()
	moves[0] = &dnd5e.ConvertedMove{Name: "tampered"}

	s.True(current.IsSelected("thunder shock"))
	s.False(current.IsSelected("tampered"))
}

func (s *SessionTestSuite) TestEvaluate() {
	empty := s.session.Evaluate()
	s.InDelta(engine.NoMoveDPR, empty.Estimate.DamagePerRound, 1e-9)
	s.Contains(empty.Summary, "• (No moves selected)")

	current, _ := s.session.Select(s.convert(testutils.GrowlURL))
	current, _ = current.Select(s.convert(testutils.ThunderboltURL))

	evaluation := current.Evaluate()
	s.Len(evaluation.Moves, 2)
	// thunderbolt is the first move with dice
	s.InDelta(14*engine.DPRAttenuation, evaluation.Estimate.DamagePerRound, 1e-9)
	s.Contains(evaluation.Summary, "• growl — Status | Bludgeoning/Slashing")
	s.Contains(evaluation.Summary, "• thunderbolt — 4d6 | Lightning")
}

func (s *SessionTestSuite) TestEvaluate_Idempotent() {
	current, _ := s.session.Select(s.convert(testutils.ThunderboltURL))
	current, _ = current.Select(s.convert(testutils.QuickAttackURL))

	s.Equal(current.Evaluate(), current.Evaluate())
}

func (s *SessionTestSuite) TestLearnset() {
	s.Len(s.session.Learnset(), 3)
}

func TestPropertySelectionBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		creature := testutils.CreateTestCreature()
		current := session.New("s", creature, 50)

		names := rapid.SliceOf(rapid.StringMatching(`[a-h]`)).Draw(t, "names")
		for _, name := range names {
			if rapid.Bool().Draw(t, "deselect") {
				current, _ = current.Deselect(name)
				continue
			}
			current, _ = current.Select(&dnd5e.ConvertedMove{Name: name})
		}

		if current.Len() > session.MaxSelectedMoves {
			t.Fatalf("selection grew to %d", current.Len())
		}
		seen := map[string]bool{}
		for _, m := range current.Moves() {
			if seen[m.Name] {
				t.Fatalf("duplicate move %q", m.Name)
			}
			seen[m.Name] = true
		}
	})
}
