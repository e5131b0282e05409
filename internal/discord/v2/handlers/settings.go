package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/message"
	"github.com/KirkDiggler/outgunned-bot/internal/services/settings"
)

// SettingsHandler handles /settings
type SettingsHandler struct {
	settings  settings.Service
	generator *message.Generator
}

// SettingsHandlerConfig holds the configuration
type SettingsHandlerConfig struct {
	Settings  settings.Service   // Required
	Generator *message.Generator // Optional
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(cfg *SettingsHandlerConfig) (*SettingsHandler, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Settings == nil {
		return nil, errors.New("settings is required")
	}

	generator := cfg.Generator
	if generator == nil {
		generator = message.NewGenerator(nil)
	}

	return &SettingsHandler{
		settings:  cfg.Settings,
		generator: generator,
	}, nil
}

// HandleSettings handles /settings dice_set:<name>
func (h *SettingsHandler) HandleSettings(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	catalog := h.settings.Catalog()

	name := strings.TrimSpace(ctx.GetStringParam("dice_set"))
	set, err := catalog.Parse(name)
	if err != nil {
		return nil, core.NewValidationError(fmt.Sprintf("Unknown dice set %q. Choose one of: %s",
			name, strings.Join(catalog.Names(), ", ")))
	}

	if err := h.settings.SetDiceSet(ctx.Context, ctx.ChannelID, set); err != nil {
		return nil, core.NewInternalError(err)
	}

	embed := builders.RollEmbed(h.generator.SettingsMessage(set)).Build()
	return core.NewResult(core.NewEmbedResponse(embed)), nil
}
