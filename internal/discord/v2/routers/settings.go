package routers

import (
	"fmt"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

// NewSettingsRouter registers /settings. Middleware passed in (for example a
// permission check) only wraps this command.
func NewSettingsRouter(pipeline *core.Pipeline, provider *services.Provider, mw ...core.Middleware) (*core.Router, error) {
	handler, err := handlers.NewSettingsHandler(&handlers.SettingsHandlerConfig{
		Settings:  provider.SettingsService,
		Generator: provider.Generator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings handler: %w", err)
	}

	router := core.NewRouter("settings", pipeline)
	router.Use(mw...)
	router.CommandFunc(handler.HandleSettings)
	router.Register()

	return router, nil
}
