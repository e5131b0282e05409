package handlers_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	mockdice "github.com/KirkDiggler/outgunned-bot/internal/dice/mock"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/rulebook/outgunned"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
	"github.com/KirkDiggler/outgunned-bot/internal/services/roller"
	mockroller "github.com/KirkDiggler/outgunned-bot/internal/services/roller/mock"
	"github.com/KirkDiggler/outgunned-bot/internal/services/settings"
)

const (
	ownerID   = "111111111111111111"
	otherID   = "999999999999999999"
	channelID = "333333333333333333"

	// 3 3 1 with every right, as rendered in the basic set
	freshRoll = "**Roll:** 3 3 1\n\n**Result:** 1 Basic\n-# outgunned v1 · rights R F A"
)

func rollButton(t *testing.T, kind roll.Kind, owner, set string) string {
	t.Helper()
	id, err := handlers.RollToken{Kind: kind, OwnerID: owner, DiceSet: set}.Encode()
	require.NoError(t, err)
	return id
}

func press(customID, userID, content string) *core.InteractionContext {
	return core.NewTestInteractionContext().
		WithUserID(userID).
		AsComponent(customID).
		WithMessage(content).
		InteractionContext
}

func buttons(t *testing.T, resp *core.Response) []discordgo.Button {
	t.Helper()
	var out []discordgo.Button
	for _, row := range resp.Components {
		actions, ok := row.(discordgo.ActionsRow)
		require.True(t, ok, "expected an action row, got %T", row)
		for _, c := range actions.Components {
			button, ok := c.(discordgo.Button)
			require.True(t, ok, "expected a button, got %T", c)
			out = append(out, button)
		}
	}
	return out
}

// RollHandlerTestSuite runs the handler against the real roller with scripted dice
type RollHandlerTestSuite struct {
	suite.Suite
	dice     *mockdice.ManualMockRoller
	settings settings.Service
	handler  *handlers.RollHandler
}

func (s *RollHandlerTestSuite) SetupTest() {
	s.dice = mockdice.NewManualMockRoller()

	rollerService, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller:  s.dice,
		Eligibility: outgunned.Eligibility,
		Keep:        outgunned.Keep,
	})
	s.Require().NoError(err)

	s.settings, err = settings.NewService(&settings.ServiceConfig{
		Repository: channels.NewInMemoryRepository(),
	})
	s.Require().NoError(err)

	s.handler, err = handlers.NewRollHandler(&handlers.RollHandlerConfig{
		Roller:   rollerService,
		Settings: s.settings,
	})
	s.Require().NoError(err)
}

func TestRollHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RollHandlerTestSuite))
}

func (s *RollHandlerTestSuite) TestHandleRoll() {
	s.dice.SetRolls([]int{3, 3, 1})
	ctx := core.NewTestInteractionContext().AsCommand("roll").WithParam("dice", float64(3))

	result, err := s.handler.HandleRoll(ctx.InteractionContext)
	s.Require().NoError(err)

	resp := result.Response
	s.False(resp.Ephemeral)
	s.False(resp.Update)
	s.Require().Len(resp.Embeds, 1)
	s.Equal(freshRoll, resp.Embeds[0].Description)
	s.Equal(builders.ColorGold, resp.Embeds[0].Color)

	got := buttons(s.T(), resp)
	s.Require().Len(got, 3)
	s.Equal("Re-roll", got[0].Label)
	s.Equal(discordgo.SuccessButton, got[0].Style)
	s.Equal("roll:reroll:user:"+ownerID+":dice_set:basic", got[0].CustomID)
	s.Equal("Free Re-roll", got[1].Label)
	s.Equal(discordgo.PrimaryButton, got[1].Style)
	s.Equal("All In", got[2].Label)
	s.Equal(discordgo.DangerButton, got[2].Style)

	for _, b := range got {
		token, err := handlers.ParseRollToken(b.CustomID)
		s.Require().NoError(err)
		s.Equal(ownerID, token.OwnerID)
		s.Equal(b.Label, token.Kind.Label())
	}
}

func (s *RollHandlerTestSuite) TestHandleRoll_DefaultCount() {
	s.dice.SetRolls([]int{2, 5})
	ctx := core.NewTestInteractionContext().AsCommand("roll")

	result, err := s.handler.HandleRoll(ctx.InteractionContext)
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Description, "**Roll:** 2 5\n")
	s.Zero(s.dice.Remaining())

	// no success means nothing to risk
	got := buttons(s.T(), result.Response)
	s.Len(got, 2)
}

func (s *RollHandlerTestSuite) TestHandleRoll_InvalidCount() {
	for _, count := range []float64{0, -3, float64(roll.MaxDice + 1)} {
		ctx := core.NewTestInteractionContext().AsCommand("roll").WithParam("dice", count)

		_, err := s.handler.HandleRoll(ctx.InteractionContext)
		s.Require().Error(err)

		var handlerErr *core.HandlerError
		s.Require().True(errors.As(err, &handlerErr))
		s.Equal(core.ErrorCodeBadRequest, handlerErr.Code)
		s.Contains(handlerErr.UserMessage, "between 1 and 10")
	}
}

func (s *RollHandlerTestSuite) TestHandleRoll_UsesChannelDiceSet() {
	pips, err := s.settings.Catalog().Parse("pips")
	s.Require().NoError(err)
	s.Require().NoError(s.settings.SetDiceSet(context.Background(), channelID, pips))

	s.dice.SetRolls([]int{1, 6})
	ctx := core.NewTestInteractionContext().AsCommand("roll")

	result, err := s.handler.HandleRoll(ctx.InteractionContext)
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Description, "**Roll:** ⚀ ⚅")

	for _, b := range buttons(s.T(), result.Response) {
		s.Contains(b.CustomID, ":dice_set:pips")
	}
}

func (s *RollHandlerTestSuite) TestRerollScenario() {
	// roll(3) -> reroll -> terminal -> free reroll fails
	s.dice.SetRolls([]int{3})
	ctx := press(rollButton(s.T(), roll.KindReroll, ownerID, "basic"), ownerID, freshRoll)

	result, err := s.handler.HandleAction(ctx)
	s.Require().NoError(err)

	resp := result.Response
	s.True(resp.Update)
	s.False(resp.Ephemeral)
	s.Equal("**Roll:** 3 3 1\n**Re-roll:** 3 3 3\n\n**Result:** 1 Critical\n-# outgunned v1 · rights - F A",
		resp.Embeds[0].Description)
	s.NotNil(resp.Components)
	s.Empty(resp.Components, "a terminal roll has no buttons")

	second := press(rollButton(s.T(), roll.KindFreeReroll, ownerID, "basic"), ownerID, resp.Embeds[0].Description)
	_, err = s.handler.HandleAction(second)
	s.True(boterr.IsIllegalTransition(err))
}

func (s *RollHandlerTestSuite) TestAllInWithoutImprovement() {
	s.dice.SetRolls([]int{2})
	ctx := press(rollButton(s.T(), roll.KindAllIn, ownerID, "basic"), ownerID, freshRoll)

	result, err := s.handler.HandleAction(ctx)
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Description, "**All In:** 3 3 2")
	s.Contains(result.Response.Embeds[0].Description, "you lose everything")
}

func (s *RollHandlerTestSuite) TestSequentialSecondPressIsRejected() {
	// both buttons were rendered on the same message; the first press wins
	s.dice.SetRolls([]int{4})
	first := press(rollButton(s.T(), roll.KindReroll, ownerID, "basic"), ownerID, freshRoll)

	result, err := s.handler.HandleAction(first)
	s.Require().NoError(err)

	updated := result.Response.Embeds[0].Description
	for _, kind := range roll.FollowUps() {
		_, err := s.handler.HandleAction(press(rollButton(s.T(), kind, ownerID, "basic"), ownerID, updated))
		s.True(boterr.IsIllegalTransition(err), kind)
	}
}

func (s *RollHandlerTestSuite) TestUnknownDiceSetInButton() {
	ctx := press(rollButton(s.T(), roll.KindReroll, ownerID, "runes"), ownerID, freshRoll)

	_, err := s.handler.HandleAction(ctx)
	s.True(boterr.IsParse(err))
}

func (s *RollHandlerTestSuite) TestMessageDrawnInAnotherSet() {
	ctx := press(rollButton(s.T(), roll.KindReroll, ownerID, "pips"), ownerID, freshRoll)

	_, err := s.handler.HandleAction(ctx)
	s.True(boterr.IsParse(err))
}

func (s *RollHandlerTestSuite) TestTamperedMessage() {
	tampered := "**Roll:** 6 6 6\n**All In:** 6 6 6\n-# outgunned v1 · rights R F A"
	ctx := press(rollButton(s.T(), roll.KindReroll, ownerID, "basic"), ownerID, tampered)

	_, err := s.handler.HandleAction(ctx)
	s.True(boterr.IsParse(err))
}

// RollHandlerIsolationTestSuite checks which requests never reach the roller
type RollHandlerIsolationTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	roller  *mockroller.MockService
	handler *handlers.RollHandler
}

func (s *RollHandlerIsolationTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = mockroller.NewMockService(s.ctrl)

	settingsService, err := settings.NewService(&settings.ServiceConfig{
		Repository: channels.NewInMemoryRepository(),
	})
	s.Require().NoError(err)

	s.handler, err = handlers.NewRollHandler(&handlers.RollHandlerConfig{
		Roller:   s.roller,
		Settings: settingsService,
	})
	s.Require().NoError(err)
}

func (s *RollHandlerIsolationTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRollHandlerIsolationTestSuite(t *testing.T) {
	suite.Run(t, new(RollHandlerIsolationTestSuite))
}

func (s *RollHandlerIsolationTestSuite) TestNotOwner() {
	ctx := press(rollButton(s.T(), roll.KindReroll, ownerID, "basic"), otherID, freshRoll)

	result, err := s.handler.HandleAction(ctx)
	s.Nil(result)
	s.Require().Error(err)
	s.True(boterr.IsPermissionDenied(err))

	handlerErr := core.FromError(err)
	s.Equal(core.ErrorCodeForbidden, handlerErr.Code)
	s.Equal(handlers.MessageNotYourRoll, handlerErr.UserMessage)
}

func (s *RollHandlerIsolationTestSuite) TestForeignButton() {
	for _, id := range []string{
		"roll:explode:user:" + ownerID + ":dice_set:basic",
		"roll:reroll:user:" + ownerID,
		"roll:reroll:user:" + ownerID + ":dice_set:basic:v2",
	} {
		// the message is a valid roll, but it must not be read
		_, err := s.handler.HandleAction(press(id, ownerID, freshRoll))
		s.True(boterr.IsParse(err), id)
		s.Equal(core.MessageNotProcessable, core.FromError(err).UserMessage)
	}
}

func (s *RollHandlerIsolationTestSuite) TestIllegalTransitionIsNoLongerAvailable() {
	s.roller.EXPECT().
		Apply(gomock.Any(), roll.KindAllIn).
		Return(boterr.IllegalTransitionf("All In is no longer available"))

	_, err := s.handler.HandleAction(press(rollButton(s.T(), roll.KindAllIn, ownerID, "basic"), ownerID, freshRoll))
	s.Require().Error(err)
	s.Equal(core.MessageNoLongerValid, core.FromError(err).UserMessage)
}

func (s *RollHandlerIsolationTestSuite) TestApplyReceivesParsedHistory() {
	s.roller.EXPECT().
		Apply(gomock.Any(), roll.KindFreeReroll).
		DoAndReturn(func(h *roll.History, _ roll.Kind) error {
			initial, ok := h.Initial()
			s.Require().True(ok)
			s.Equal([]int{3, 3, 1}, initial.Dice)
			s.Equal(roll.Rights{Reroll: true, FreeReroll: true, AllIn: true}, h.Rights())
			return h.RecordFollowUp(roll.KindFreeReroll, []int{3, 3, 5})
		})

	result, err := s.handler.HandleAction(press(rollButton(s.T(), roll.KindFreeReroll, ownerID, "basic"), ownerID, freshRoll))
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Description, "**Free Re-roll:** 3 3 5")
}

func TestNewRollHandler_Validation(t *testing.T) {
	_, err := handlers.NewRollHandler(nil)
	assert.Error(t, err)

	_, err = handlers.NewRollHandler(&handlers.RollHandlerConfig{})
	assert.Error(t, err)
}

// Presses that read the same pre-edit message each rebuild their own
// history; nothing is shared between them.
func TestHandleAction_ConcurrentPressesShareNoState(t *testing.T) {
	rollerService, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller:  dice.NewRoller(),
		Eligibility: outgunned.Eligibility,
		Keep:        outgunned.Keep,
	})
	require.NoError(t, err)

	settingsService, err := settings.NewService(&settings.ServiceConfig{
		Repository: channels.NewInMemoryRepository(),
	})
	require.NoError(t, err)

	handler, err := handlers.NewRollHandler(&handlers.RollHandlerConfig{
		Roller:   rollerService,
		Settings: settingsService,
	})
	require.NoError(t, err)

	const presses = 16
	results := make([]*core.HandlerResult, presses)
	errs := make([]error, presses)

	var wg sync.WaitGroup
	for i := 0; i < presses; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := roll.FollowUps()[i%3]
			id, err := handlers.RollToken{Kind: kind, OwnerID: ownerID, DiceSet: "basic"}.Encode()
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = handler.HandleAction(press(id, ownerID, freshRoll))
		}(i)
	}
	wg.Wait()

	for i := 0; i < presses; i++ {
		require.NoError(t, errs[i])
		desc := results[i].Response.Embeds[0].Description
		assert.Contains(t, desc, "**Roll:** 3 3 1\n**"+roll.FollowUps()[i%3].Label()+":** 3 3 ")
		assert.Empty(t, results[i].Response.Components)
	}
}
