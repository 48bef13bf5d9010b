package dice

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-5e/internal/engine"
	"github.com/KirkDiggler/pokemon-5e/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokemon-5e/internal/entities/dnd5e"
	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-5e/internal/session"
	"github.com/KirkDiggler/pokemon-5e/internal/testutils"
)

// scriptedRoller returns queued results so totals are predictable
type scriptedRoller struct {
	rolls []int
	err   error
	sizes []int
}

func (r *scriptedRoller) next() int {
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sizes = append(r.sizes, size)
	return r.next(), nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]int, count)
	for i := range out {
		r.sizes = append(r.sizes, size)
		out[i] = r.next()
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	roller       *scriptedRoller
	orchestrator Service
	entity       *rpgtoolkit.CreatureEntity
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.roller = &scriptedRoller{}
	s.ctx = context.Background()

	o, err := NewOrchestrator(&Config{
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.orchestrator = o

	sess := session.New("sess_1", testutils.CreateTestCreature(), 25)
	s.entity = rpgtoolkit.WrapSession(sess)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := NewOrchestrator(&Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewOrchestrator(nil)
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestRollMoveDamage() {
	s.roller.rolls = []int{2, 5}

	out, err := s.orchestrator.RollMoveDamage(s.ctx, &RollMoveDamageInput{
		Entity: s.entity,
		Move: &dnd5e.ConvertedMove{
			Name:       "quick attack",
			Dice:       engine.Dice2d6,
			DamageType: "Bludgeoning/Slashing",
		},
	})
	s.Require().NoError(err)

	s.Equal("roll_1", out.Roll.RollID)
	s.Equal("sess_1", out.Roll.EntityID)
	s.Equal("2d6", out.Roll.Notation)
	s.Equal([]int{2, 5}, out.Roll.Dice)
	s.Equal(7, out.Roll.Total)
	s.Equal("quick attack 2d6[2,5]=7 Bludgeoning/Slashing", out.Roll.Description)
	s.Equal([]int{6, 6}, s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRollMoveDamageOpenEndedDice() {
	s.roller.rolls = []int{1, 2, 3, 4, 5, 6}

	out, err := s.orchestrator.RollMoveDamage(s.ctx, &RollMoveDamageInput{
		Entity: s.entity,
		Move:   &dnd5e.ConvertedMove{Name: "hyper beam", Dice: engine.Dice6d6Plus},
	})
	s.Require().NoError(err)

	s.Equal("6d6+", out.Roll.Notation)
	s.Len(out.Roll.Dice, 6)
	s.Equal(21, out.Roll.Total)
}

func (s *OrchestratorTestSuite) TestRollMoveDamageRejects() {
	testCases := []struct {
		name  string
		input *RollMoveDamageInput
	}{
		{"nil input", nil},
		{"missing entity", &RollMoveDamageInput{Move: &dnd5e.ConvertedMove{Name: "ember", Dice: "1d6"}}},
		{"missing move", &RollMoveDamageInput{Entity: s.entity}},
		{"status move", &RollMoveDamageInput{Entity: s.entity, Move: &dnd5e.ConvertedMove{Name: "growl"}}},
		{"bad notation", &RollMoveDamageInput{Entity: s.entity, Move: &dnd5e.ConvertedMove{Name: "odd", Dice: "d6"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.RollMoveDamage(s.ctx, tc.input)
			s.Nil(out)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollMoveDamageRollerFailure() {
	s.roller.err = stderrors.New("entropy exhausted")

	_, err := s.orchestrator.RollMoveDamage(s.ctx, &RollMoveDamageInput{
		Entity: s.entity,
		Move:   &dnd5e.ConvertedMove{Name: "ember", Dice: "1d6"},
	})
	s.Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestRollAttack() {
	testCases := []struct {
		name     string
		natural  int
		bonus    int
		total    int
		critical bool
		fumble   bool
		notation string
	}{
		{"hit", 12, 5, 17, false, false, "1d20+5"},
		{"natural twenty", 20, 5, 25, true, false, "1d20+5"},
		{"natural one", 1, 5, 6, false, true, "1d20+5"},
		{"negative bonus", 10, -1, 9, false, false, "1d20-1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.rolls = []int{tc.natural}

			out, err := s.orchestrator.RollAttack(s.ctx, &RollAttackInput{
				Entity:      s.entity,
				AttackBonus: tc.bonus,
			})
			s.Require().NoError(err)
			s.Equal(tc.total, out.Roll.Total)
			s.Equal(tc.notation, out.Roll.Notation)
			s.Equal(tc.bonus, out.Roll.Modifier)
			s.Equal(tc.critical, out.Critical)
			s.Equal(tc.fumble, out.Fumble)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollAttackRequiresEntity() {
	_, err := s.orchestrator.RollAttack(s.ctx, &RollAttackInput{AttackBonus: 3})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestParseDiceNotation(t *testing.T) {
	testCases := []struct {
		notation string
		count    int
		size     int
		wantErr  bool
	}{
		{"1d6", 1, 6, false},
		{"6d6+", 6, 6, false},
		{"3D8", 3, 8, false},
		{"0d6", 0, 0, true},
		{"2d", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.notation, func(t *testing.T) {
			count, size, err := parseDiceNotation(tc.notation)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.count, count)
			assert.Equal(t, tc.size, size)
		})
	}
}
