package v2

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/middleware"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/routers"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
	"github.com/KirkDiggler/outgunned-bot/internal/uuid"
)

// HandlerConfig holds what the interaction pipeline needs
type HandlerConfig struct {
	Provider *services.Provider // Required

	// RateLimitStore counts interactions per user; in-memory if nil
	RateLimitStore middleware.RateLimitStore

	// RateLimitPerMinute caps interactions per user; 0 disables the limit
	RateLimitPerMinute int

	// RequireManageChannels restricts /settings to members who can manage the channel
	RequireManageChannels bool

	// DeferAfter acknowledges slash commands still running after this long; 0 never defers
	DeferAfter time.Duration

	// IDGenerator produces request IDs for log correlation
	IDGenerator uuid.Generator
}

// SetupHandlers builds the pipeline with every router registered
func SetupHandlers(cfg *HandlerConfig) (*core.Pipeline, error) {
	if cfg == nil || cfg.Provider == nil {
		return nil, errors.New("provider is required")
	}

	pipeline := core.NewPipeline()

	// Apply global middleware
	pipeline.Use(
		middleware.RequestIDMiddleware(cfg.IDGenerator),
		middleware.LoggingMiddleware(nil),
		middleware.ErrorMiddleware(nil),
	)
	if cfg.DeferAfter > 0 {
		pipeline.Use(middleware.DeferMiddleware(&middleware.DeferConfig{DeferAfter: cfg.DeferAfter}))
	}
	pipeline.Use(middleware.RecoveryMiddleware())
	if cfg.RateLimitPerMinute > 0 {
		pipeline.Use(middleware.UserRateLimitMiddleware(cfg.RateLimitPerMinute, time.Minute, cfg.RateLimitStore))
	}

	if _, err := routers.NewRollRouter(pipeline, cfg.Provider); err != nil {
		return nil, err
	}

	var settingsMiddleware []core.Middleware
	if cfg.RequireManageChannels {
		settingsMiddleware = append(settingsMiddleware,
			middleware.PermissionRequiredMiddleware(discordgo.PermissionManageChannels))
	}
	if _, err := routers.NewSettingsRouter(pipeline, cfg.Provider, settingsMiddleware...); err != nil {
		return nil, err
	}

	if err := routers.NewTableRouters(pipeline, cfg.Provider); err != nil {
		return nil, err
	}

	return pipeline, nil
}

// InteractionHandler adapts the pipeline to a discordgo event handler.
// discordgo runs each event on its own goroutine.
func InteractionHandler(pipeline *core.Pipeline) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := pipeline.Execute(context.Background(), s, i); err != nil {
			if boterr.IsDelivery(err) {
				log.Printf("[Discord] Response for interaction %s was not delivered: %v", i.ID, err)
				return
			}
			log.Printf("[Discord] Handler error for interaction %s: %v", i.ID, err)
		}
	}
}

// Attach registers the pipeline on a session
func Attach(dg *discordgo.Session, cfg *HandlerConfig) (*core.Pipeline, error) {
	pipeline, err := SetupHandlers(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	dg.AddHandler(InteractionHandler(pipeline))
	return pipeline, nil
}
