package handlers

import (
	"errors"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/message"
	"github.com/KirkDiggler/outgunned-bot/internal/services/settings"
)

// TableHandler answers the commands that need nothing but a die or the
// catalog: /coin, /d6 and /help
type TableHandler struct {
	diceRoller dice.Roller
	settings   settings.Service
	generator  *message.Generator
}

// TableHandlerConfig holds the configuration
type TableHandlerConfig struct {
	DiceRoller dice.Roller        // Required
	Settings   settings.Service   // Required
	Generator  *message.Generator // Optional
}

// NewTableHandler creates a new handler for the simple commands
func NewTableHandler(cfg *TableHandlerConfig) (*TableHandler, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller is required")
	}
	if cfg.Settings == nil {
		return nil, errors.New("settings is required")
	}

	generator := cfg.Generator
	if generator == nil {
		generator = message.NewGenerator(nil)
	}

	return &TableHandler{
		diceRoller: cfg.DiceRoller,
		settings:   cfg.Settings,
		generator:  generator,
	}, nil
}

// HandleCoin handles /coin
func (h *TableHandler) HandleCoin(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	heads, err := dice.FlipCoin(h.diceRoller)
	if err != nil {
		return nil, core.NewInternalError(err)
	}

	return embedResult(h.generator.CoinMessage(heads)), nil
}

// HandleD6 handles /d6. The die is drawn in the channel's dice set.
func (h *TableHandler) HandleD6(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	set, err := h.settings.GetDiceSet(ctx.Context, ctx.ChannelID)
	if err != nil {
		return nil, core.NewInternalError(err)
	}

	values, err := dice.RollD6(h.diceRoller, 1)
	if err != nil {
		return nil, core.NewInternalError(err)
	}

	content, err := h.generator.D6Message(values[0], set)
	if err != nil {
		return nil, core.NewInternalError(err)
	}

	return embedResult(content), nil
}

// HelpTitle heads the /help embed
const HelpTitle = "Outgunned Dice"

// HandleHelp handles /help
func (h *TableHandler) HandleHelp(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	embed := builders.InfoEmbed(HelpTitle, h.generator.HelpMessage(h.settings.Catalog())).Build()
	return core.NewResult(core.NewEmbedResponse(embed)), nil
}

func embedResult(content string) *core.HandlerResult {
	embed := builders.RollEmbed(content).Build()
	return core.NewResult(core.NewEmbedResponse(embed))
}
