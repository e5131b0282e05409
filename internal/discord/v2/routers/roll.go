package routers

import (
	"fmt"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

// RollRouter owns /roll and every roll:* button
type RollRouter struct {
	router  *core.Router
	handler *handlers.RollHandler
}

// NewRollRouter creates the roll router and registers it with the pipeline
func NewRollRouter(pipeline *core.Pipeline, provider *services.Provider, mw ...core.Middleware) (*RollRouter, error) {
	router := core.NewRouter(handlers.RollDomain, pipeline)

	handler, err := handlers.NewRollHandler(&handlers.RollHandlerConfig{
		Roller:    provider.RollerService,
		Settings:  provider.SettingsService,
		Generator: provider.Generator,
		Parser:    provider.Parser,
		CustomIDs: router.GetCustomIDBuilder(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roll handler: %w", err)
	}

	rr := &RollRouter{
		router:  router,
		handler: handler,
	}

	rr.router.Use(mw...)
	rr.registerRoutes()
	rr.router.Register()

	return rr, nil
}

func (r *RollRouter) registerRoutes() {
	r.router.CommandFunc(r.handler.HandleRoll)

	// Buttons rendered by any earlier process land here too. Unknown actions
	// still reach the handler so they get the "could not process" notice.
	r.router.ComponentFunc(r.handler.HandleAction, "*")
}
