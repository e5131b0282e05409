package routers

import (
	"fmt"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

// NewTableRouters registers /coin, /d6 and /help, one router per command
func NewTableRouters(pipeline *core.Pipeline, provider *services.Provider, mw ...core.Middleware) error {
	handler, err := handlers.NewTableHandler(&handlers.TableHandlerConfig{
		DiceRoller: provider.DiceRoller,
		Settings:   provider.SettingsService,
		Generator:  provider.Generator,
	})
	if err != nil {
		return fmt.Errorf("failed to create table handler: %w", err)
	}

	routes := map[string]core.HandlerFunc{
		"coin": handler.HandleCoin,
		"d6":   handler.HandleD6,
		"help": handler.HandleHelp,
	}
	for name, fn := range routes {
		router := core.NewRouter(name, pipeline)
		router.Use(mw...)
		router.Command(fn)
		router.Register()
	}

	return nil
}
