package roller_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	mockdice "github.com/KirkDiggler/outgunned-bot/internal/dice/mock"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/rulebook/outgunned"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/events"
	"github.com/KirkDiggler/outgunned-bot/internal/services/roller"
)

type RollerServiceTestSuite struct {
	suite.Suite
	dice    *mockdice.ManualMockRoller
	service roller.Service
}

func (s *RollerServiceTestSuite) SetupTest() {
	s.dice = mockdice.NewManualMockRoller()

	svc, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller:  s.dice,
		Eligibility: outgunned.Eligibility,
		Keep:        outgunned.Keep,
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestRollerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RollerServiceTestSuite))
}

func (s *RollerServiceTestSuite) TestRoll_AllCounts() {
	for count := 1; count <= roll.MaxDice; count++ {
		rolls := make([]int, count)
		for i := range rolls {
			rolls[i] = i%6 + 1
		}
		s.dice.SetRolls(rolls)

		h, err := s.service.Roll(count)
		s.Require().NoError(err)
		s.Equal(1, h.Len())
		s.False(h.IsTerminal())
		s.True(h.CanReroll())
		s.Equal(outgunned.Eligibility(rolls), h.Rights())
	}
}

func (s *RollerServiceTestSuite) TestRoll_InvalidCount() {
	for _, count := range []int{0, -1, roll.MaxDice + 1} {
		_, err := s.service.Roll(count)
		s.True(boterr.IsInvalidArgument(err), "count %d", count)
	}
	s.Equal(0, s.dice.Remaining())
}

func (s *RollerServiceTestSuite) TestScenario_RerollTerminates() {
	s.dice.SetRolls([]int{2, 2, 5, 6})

	h, err := s.service.Roll(3)
	s.Require().NoError(err)
	s.Equal(1, h.Len())
	s.True(h.CanReroll())

	s.Require().NoError(s.service.Reroll(h))
	s.Equal(2, h.Len())
	s.False(h.CanReroll())
	s.False(h.CanFreeReroll())
	s.False(h.CanGoAllIn())

	latest, _ := h.Latest()
	s.Equal([]int{2, 2, 6}, latest.Dice, "paired dice are kept, the spare die is thrown again")

	err = s.service.FreeReroll(h)
	s.True(boterr.IsIllegalTransition(err))
	s.Equal(2, h.Len())
}

func (s *RollerServiceTestSuite) TestAtMostOneFollowUp() {
	for _, first := range roll.FollowUps() {
		s.Run(first.String(), func() {
			s.dice.SetRolls([]int{3, 3, 1, 4})

			h, err := s.service.Roll(3)
			s.Require().NoError(err)
			s.Require().NoError(s.service.Apply(h, first))

			for _, second := range roll.FollowUps() {
				err := s.service.Apply(h, second)
				s.True(boterr.IsIllegalTransition(err))
			}
			s.Equal(2, h.Len())
			s.Equal(0, s.dice.Remaining(), "rejected actions never throw dice")
		})
	}
}

func (s *RollerServiceTestSuite) TestAllIn_NotOfferedOnFailure() {
	s.dice.SetRolls([]int{1, 2, 3})

	h, err := s.service.Roll(3)
	s.Require().NoError(err)
	s.False(h.CanGoAllIn())

	err = s.service.AllIn(h)
	s.True(boterr.IsIllegalTransition(err))
	s.False(h.IsTerminal())
}

func (s *RollerServiceTestSuite) TestApply_Validation() {
	err := s.service.Apply(nil, roll.KindReroll)
	s.True(boterr.IsInvalidArgument(err))

	s.dice.SetRolls([]int{1})
	h, err := s.service.Roll(1)
	s.Require().NoError(err)

	err = s.service.Apply(h, roll.KindRoll)
	s.True(boterr.IsInvalidArgument(err))
}

func (s *RollerServiceTestSuite) TestApply_AllDiceKept() {
	s.dice.SetRolls([]int{4, 4})

	h, err := s.service.Roll(2)
	s.Require().NoError(err)
	s.Require().NoError(s.service.FreeReroll(h))

	latest, _ := h.Latest()
	s.Equal([]int{4, 4}, latest.Dice)
}

func TestApply_SourceFailureLeavesHistoryUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mockdice.NewMockRoller(ctrl)

	svc, err := roller.NewService(&roller.ServiceConfig{DiceRoller: source})
	require.NoError(t, err)

	source.EXPECT().RollN(2, dice.Sides).Return([]int{1, 6}, nil)
	h, err := svc.Roll(2)
	require.NoError(t, err)
	assert.Equal(t, roll.AllRights(nil), h.Rights())

	source.EXPECT().RollN(2, dice.Sides).Return(nil, errors.New("no entropy"))
	err = svc.Reroll(h)
	require.Error(t, err)

	assert.Equal(t, 1, h.Len())
	assert.True(t, h.CanReroll(), "a failed throw does not consume the right")
}

func TestRoll_RerollGrantedWhateverThePolicy(t *testing.T) {
	svc, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller:  mockdice.NewManualMockRoller(3, 3, 1),
		Eligibility: func([]int) roll.Rights { return roll.Rights{} },
	})
	require.NoError(t, err)

	h, err := svc.Roll(3)
	require.NoError(t, err)
	assert.Equal(t, roll.Rights{Reroll: true}, h.Rights())
	assert.Equal(t, []roll.Kind{roll.KindReroll}, h.Available())
}

func TestNewService_Validation(t *testing.T) {
	_, err := roller.NewService(nil)
	assert.Error(t, err)

	_, err = roller.NewService(&roller.ServiceConfig{})
	assert.Error(t, err)
}

func TestApply_BadKeepPolicy(t *testing.T) {
	svc, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller: mockdice.NewManualMockRoller(1, 2),
		Keep:       func([]int) []bool { return []bool{true} },
	})
	require.NoError(t, err)

	h, err := svc.Roll(2)
	require.NoError(t, err)

	err = svc.Reroll(h)
	assert.Error(t, err)
	assert.False(t, h.IsTerminal())
}

type captureListener struct {
	got []*events.RollEvent
}

func (c *captureListener) ID() string    { return "capture" }
func (c *captureListener) Priority() int { return events.PriorityDefault }

func (c *captureListener) HandleEvent(event events.Event) error {
	c.got = append(c.got, event.(*events.RollEvent))
	return errors.New("listener failures are only logged")
}

func TestService_AnnouncesTransitions(t *testing.T) {
	bus := events.NewBus()
	capture := &captureListener{}
	bus.Subscribe(capture, events.EventTypeRolled, events.EventTypeFollowUpApplied)

	svc, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller:  mockdice.NewManualMockRoller(3, 3, 1, 3),
		Eligibility: outgunned.Eligibility,
		Keep:        outgunned.Keep,
		Events:      bus,
	})
	require.NoError(t, err)

	h, err := svc.Roll(3)
	require.NoError(t, err)
	require.NoError(t, svc.Reroll(h), "a failing listener does not fail the transition")

	require.Len(t, capture.got, 2)

	assert.Equal(t, events.EventTypeRolled, capture.got[0].Type)
	assert.Equal(t, []int{3, 3, 1}, capture.got[0].Dice)
	assert.Empty(t, capture.got[0].Before)

	assert.Equal(t, events.EventTypeFollowUpApplied, capture.got[1].Type)
	assert.Equal(t, roll.KindReroll, capture.got[1].Kind)
	assert.Equal(t, []int{3, 3, 1}, capture.got[1].Before)
	assert.Equal(t, []int{3, 3, 3}, capture.got[1].Dice)
	assert.Equal(t, h.Rights(), capture.got[1].Rights)
}
