package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
)

func slow(d time.Duration, content string) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		time.Sleep(d)
		return core.NewResult(core.NewResponse(content)), nil
	})
}

func runWithDefer(t *testing.T, config *DeferConfig, handler core.Handler, i *core.TestInteractionContext) *core.MockResponder {
	t.Helper()

	responder := core.NewMockResponder()
	pipeline := core.NewPipeline()
	pipeline.SetResponderFactory(responder.Factory())
	pipeline.Use(DeferMiddleware(config))
	pipeline.Register(handler)

	require.NoError(t, pipeline.Execute(context.Background(), nil, i.Interaction))
	return responder
}

func TestDeferMiddleware_FastCommandAnswersDirectly(t *testing.T) {
	i := core.NewTestInteractionContext().AsCommand("roll")
	responder := runWithDefer(t, &DeferConfig{DeferAfter: time.Second}, ok("rolled"), i)

	assert.Empty(t, responder.DeferCalls)
	require.Len(t, responder.Responses, 1)
	assert.Empty(t, responder.Edits)
}

func TestDeferMiddleware_SlowCommandIsDeferred(t *testing.T) {
	i := core.NewTestInteractionContext().AsCommand("settings")
	responder := runWithDefer(t, &DeferConfig{DeferAfter: 10 * time.Millisecond}, slow(100*time.Millisecond, "saved"), i)

	assert.Equal(t, []bool{false}, responder.DeferCalls)
	require.Len(t, responder.Edits, 1)
	assert.Equal(t, "saved", responder.Edits[0].Content)
	assert.Empty(t, responder.Responses)
}

func TestDeferMiddleware_ButtonsAreNeverDeferred(t *testing.T) {
	i := core.NewTestInteractionContext().AsComponent("roll:reroll:user:1:dice_set:basic")
	responder := runWithDefer(t, &DeferConfig{AlwaysDefer: true}, ok("updated"), i)

	assert.Empty(t, responder.DeferCalls)
	assert.Len(t, responder.Responses, 1)
}

func TestDeferMiddleware_AlwaysDefer(t *testing.T) {
	i := core.NewTestInteractionContext().AsCommand("help")
	responder := runWithDefer(t, &DeferConfig{AlwaysDefer: true, EphemeralByDefault: true}, ok("help"), i)

	assert.Equal(t, []bool{true}, responder.DeferCalls)
	require.Len(t, responder.Edits, 1)
}

func TestDeferMiddleware_Skip(t *testing.T) {
	i := core.NewTestInteractionContext().AsCommand("coin")
	responder := runWithDefer(t, &DeferConfig{AlwaysDefer: true, SkipDeferFor: []string{"coin"}}, ok("heads"), i)

	assert.Empty(t, responder.DeferCalls)
}

func TestDeferMiddleware_ClampsLateDeadline(t *testing.T) {
	config := &DeferConfig{DeferAfter: 5 * time.Second}
	DeferMiddleware(config)
	assert.Equal(t, 2*time.Second, config.DeferAfter)
}
