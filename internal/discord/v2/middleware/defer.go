package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
)

// Discord drops interactions that are not answered within three seconds
const interactionDeadline = 3 * time.Second

// DeferConfig configures the defer middleware
type DeferConfig struct {
	// AlwaysDefer defers every slash command before running the handler
	AlwaysDefer bool

	// EphemeralByDefault makes deferred responses ephemeral
	EphemeralByDefault bool

	// DeferAfter defers a slash command whose handler is still running after
	// this long. 0 disables the timer.
	DeferAfter time.Duration

	// SkipDeferFor lists commands that never defer
	SkipDeferFor []string
}

// DefaultDeferConfig defers commands that are slow to answer, such as a
// settings lookup against a remote store
func DefaultDeferConfig() *DeferConfig {
	return &DeferConfig{
		DeferAfter: 2 * time.Second,
	}
}

// DeferMiddleware acknowledges slow slash commands so Discord keeps the
// interaction alive. Button presses are never deferred: a deferred update
// would let an error notice overwrite the message the buttons belong to.
func DeferMiddleware(config *DeferConfig) core.Middleware {
	if config == nil {
		config = DefaultDeferConfig()
	}
	if config.DeferAfter >= interactionDeadline {
		log.Printf("[Defer] DeferAfter %v is past Discord's deadline, using %v", config.DeferAfter, DefaultDeferConfig().DeferAfter)
		config.DeferAfter = DefaultDeferConfig().DeferAfter
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			responder := ctx.Responder()
			if responder == nil || !ctx.IsCommand() || shouldSkipDefer(ctx, config) {
				return next.Handle(ctx)
			}

			if config.AlwaysDefer {
				if err := responder.Defer(config.EphemeralByDefault); err != nil {
					log.Printf("[Defer] Failed to defer %s: %v", ctx.GetCommandName(), err)
					return next.Handle(ctx)
				}
				return markDeferred(next.Handle(ctx))
			}

			if config.DeferAfter <= 0 {
				return next.Handle(ctx)
			}

			type handlerResponse struct {
				result *core.HandlerResult
				err    error
			}
			responseChan := make(chan handlerResponse, 1)

			go func() {
				result, err := next.Handle(ctx)
				responseChan <- handlerResponse{result, err}
			}()

			timer := time.NewTimer(config.DeferAfter)
			defer timer.Stop()

			select {
			case resp := <-responseChan:
				return resp.result, resp.err

			case <-timer.C:
				if err := responder.Defer(config.EphemeralByDefault); err != nil {
					log.Printf("[Defer] Failed to defer %s after %v: %v", ctx.GetCommandName(), config.DeferAfter, err)
					resp := <-responseChan
					return resp.result, resp.err
				}

				log.Printf("[Defer] /%s still running after %v, deferred", ctx.GetCommandName(), config.DeferAfter)
				resp := <-responseChan
				return markDeferred(resp.result, resp.err)
			}
		})
	}
}

func markDeferred(result *core.HandlerResult, err error) (*core.HandlerResult, error) {
	if result != nil {
		result.Deferred = true
	}
	return result, err
}

func shouldSkipDefer(ctx *core.InteractionContext, config *DeferConfig) bool {
	name := ctx.GetCommandName()
	for _, skip := range config.SkipDeferFor {
		if skip == name {
			return true
		}
	}
	return false
}
