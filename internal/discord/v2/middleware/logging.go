package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/uuid"
)

// LogConfig configures logging behavior
type LogConfig struct {
	// LogRequests logs incoming interactions
	LogRequests bool

	// LogDuration logs handler execution time
	LogDuration bool

	// LogErrors logs errors that reach this middleware
	LogErrors bool

	// Logger allows custom logging implementation
	Logger Logger
}

// Logger is a custom logging interface
type Logger interface {
	LogRequest(ctx *core.InteractionContext)
	LogDone(ctx *core.InteractionContext, result *core.HandlerResult, duration time.Duration)
	LogError(ctx *core.InteractionContext, err error)
}

// DefaultLogConfig returns sensible defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests: true,
		LogDuration: true,
		LogErrors:   true,
		Logger:      &defaultLogger{},
	}
}

// LoggingMiddleware provides request/response logging
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.Logger == nil {
				return next.Handle(ctx)
			}

			if config.LogRequests {
				config.Logger.LogRequest(ctx)
			}

			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			if err != nil && config.LogErrors {
				config.Logger.LogError(ctx, err)
			}
			if config.LogDuration {
				config.Logger.LogDone(ctx, result, duration)
			}

			return result, err
		})
	}
}

// defaultLogger writes to the standard logger
type defaultLogger struct{}

func (l *defaultLogger) LogRequest(ctx *core.InteractionContext) {
	log.Printf("[Discord] %s %s, User: %s, Channel: %s",
		ctx.RequestID(), interactionName(ctx), ctx.UserID, ctx.ChannelID)
}

func (l *defaultLogger) LogDone(ctx *core.InteractionContext, result *core.HandlerResult, duration time.Duration) {
	status := "success"
	if result == nil || result.Response == nil {
		status = "no_response"
	} else if result.Response.Ephemeral {
		status = "ephemeral"
	} else if result.Response.Update {
		status = "update"
	}

	log.Printf("[Discord] %s %s completed in %v (%s)", ctx.RequestID(), interactionName(ctx), duration, status)
}

func (l *defaultLogger) LogError(ctx *core.InteractionContext, err error) {
	log.Printf("[Discord] %s Error in %s: %v", ctx.RequestID(), interactionName(ctx), err)
}

// interactionName is "/roll", "/channel get" or "roll:reroll"
func interactionName(ctx *core.InteractionContext) string {
	if ctx.IsCommand() {
		name := "/" + ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			name += " " + sub
		}
		return name
	}

	if ctx.IsComponent() {
		if parsed, err := core.ParseCustomID(ctx.GetCustomID()); err == nil {
			return parsed.Domain + ":" + parsed.Action
		}
		return "component"
	}

	return "unknown"
}

// RequestIDMiddleware tags the interaction with a request ID for log correlation
func RequestIDMiddleware(gen uuid.Generator) core.Middleware {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if ctx.RequestID() == "" {
				ctx.SetRequestID(gen.New())
			}
			return next.Handle(ctx)
		})
	}
}
