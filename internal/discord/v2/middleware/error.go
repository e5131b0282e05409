package middleware

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.InteractionContext, err error, handlerErr *core.HandlerError)

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:   true,
		ErrorLogger: defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into ephemeral replies so the
// pipeline never sees them. Coded errors pick the message shown.
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			handlerErr := core.FromError(err)
			if config.LogErrors && config.ErrorLogger != nil {
				config.ErrorLogger(ctx, err, handlerErr)
			}

			message := core.MessageInternal
			if handlerErr.ShowToUser && handlerErr.UserMessage != "" {
				message = handlerErr.UserMessage
			}

			return &core.HandlerResult{
				Response: core.NewEphemeralResponse(message),
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] Panic recovered in handler: %v\n%s", r, debug.Stack())

					var cause error
					switch v := r.(type) {
					case error:
						cause = v
					case string:
						cause = errors.New(v)
					default:
						cause = fmt.Errorf("panic: %v", r)
					}

					result = nil
					err = core.NewInternalError(cause)
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func defaultErrorLogger(ctx *core.InteractionContext, err error, handlerErr *core.HandlerError) {
	// expected outcomes like a stale button are not worth a stack of context
	if handlerErr.Code < core.ErrorCodeInternal {
		log.Printf("[Discord] %s rejected (%d) for user %s: %v",
			interactionName(ctx), handlerErr.Code, ctx.UserID, err)
		return
	}

	log.Printf("[Discord] Handler error in %s: %v, request: %s, user: %s, channel: %s, code: %s, meta: %v",
		interactionName(ctx), err, ctx.RequestID(), ctx.UserID, ctx.ChannelID,
		boterr.GetCode(err), boterr.GetMeta(err))
}
