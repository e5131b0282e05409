package handlers

import (
	"errors"
	"log"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/message"
	"github.com/KirkDiggler/outgunned-bot/internal/services/roller"
	"github.com/KirkDiggler/outgunned-bot/internal/services/settings"
)

const (
	// DefaultDiceCount is used when /roll is sent without the dice option
	DefaultDiceCount = 2

	// MessageNotYourRoll is shown when a player presses someone else's buttons
	MessageNotYourRoll = "You cannot re-roll someone else's roll."
)

// RollHandler runs /roll and the follow-up buttons on its messages
type RollHandler struct {
	roller    roller.Service
	settings  settings.Service
	generator *message.Generator
	parser    *message.Parser
	customIDs *core.CustomIDBuilder
}

// RollHandlerConfig holds the configuration
type RollHandlerConfig struct {
	Roller    roller.Service     // Required
	Settings  settings.Service   // Required
	Generator *message.Generator // Optional
	Parser    *message.Parser    // Optional

	// CustomIDs builds the button custom IDs. It must be for RollDomain;
	// defaults to a new builder for it.
	CustomIDs *core.CustomIDBuilder
}

// NewRollHandler creates a new roll handler
func NewRollHandler(cfg *RollHandlerConfig) (*RollHandler, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Roller == nil {
		return nil, errors.New("roller is required")
	}
	if cfg.Settings == nil {
		return nil, errors.New("settings is required")
	}

	h := &RollHandler{
		roller:    cfg.Roller,
		settings:  cfg.Settings,
		generator: cfg.Generator,
		parser:    cfg.Parser,
		customIDs: cfg.CustomIDs,
	}
	if h.customIDs == nil {
		h.customIDs = core.NewCustomIDBuilder(RollDomain)
	}
	if h.generator == nil {
		h.generator = message.NewGenerator(nil)
	}
	if h.parser == nil {
		h.parser = message.NewParser()
	}

	return h, nil
}

// HandleRoll handles /roll dice:<n>
func (h *RollHandler) HandleRoll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	count := DefaultDiceCount
	if ctx.HasParam("dice") {
		count = ctx.GetIntParam("dice")
	}
	if count < 1 || count > roll.MaxDice {
		return nil, core.NewValidationError(invalidCountMessage())
	}

	set, err := h.settings.GetDiceSet(ctx.Context, ctx.ChannelID)
	if err != nil {
		return nil, core.NewInternalError(err)
	}

	history, err := h.roller.Roll(count)
	if err != nil {
		return nil, err
	}

	response, err := h.render(history, set, ctx.UserID)
	if err != nil {
		return nil, err
	}

	return core.NewResult(response), nil
}

// HandleAction handles a Re-roll, Free Re-roll or All In press. The whole
// session is read back from the button and the message it is attached to.
func (h *RollHandler) HandleAction(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	token, err := ParseRollToken(ctx.GetCustomID())
	if err != nil {
		return nil, err
	}

	if ctx.UserID != token.OwnerID {
		return nil, boterr.PermissionDenied(MessageNotYourRoll).
			WithMeta("owner", token.OwnerID).
			WithMeta("actor", ctx.UserID)
	}

	set, err := h.settings.Catalog().Parse(token.DiceSet)
	if err != nil {
		return nil, boterr.WrapWithCode(err, boterr.CodeParse, "roll button names an unknown dice set")
	}

	history, err := h.parser.ParseRoll(ctx.GetMessageText(), set)
	if err != nil {
		log.Printf("[Roll] Could not read message %s for %s: %v", messageID(ctx), token.Kind, err)
		return nil, err
	}

	if err := h.roller.Apply(history, token.Kind); err != nil {
		return nil, err
	}

	response, err := h.render(history, set, token.OwnerID)
	if err != nil {
		return nil, err
	}

	return core.NewResult(response.AsUpdate()), nil
}

// render builds the roll embed and one button per follow-up still available
func (h *RollHandler) render(history *roll.History, set dice.DiceSet, ownerID string) (*core.Response, error) {
	content, err := h.generator.RollMessage(history, set)
	if err != nil {
		return nil, err
	}

	buttons := builders.NewComponentBuilder(h.customIDs)
	for _, kind := range history.Available() {
		token := RollToken{Kind: kind, OwnerID: ownerID, DiceSet: set.String()}
		if err := token.Validate(); err != nil {
			return nil, err
		}
		addRollButton(buttons, token)
	}

	components, err := buttons.Build()
	if err != nil {
		return nil, err
	}

	embed := builders.RollEmbed(content).Build()
	return core.NewEmbedResponse(embed).WithComponents(components...), nil
}

func addRollButton(b *builders.ComponentBuilder, t RollToken) {
	label, action := t.Kind.Label(), t.Kind.String()
	switch t.Kind {
	case roll.KindReroll:
		b.SuccessButton(label, action, rollTokenTarget, t.args()...)
	case roll.KindAllIn:
		b.DangerButton(label, action, rollTokenTarget, t.args()...)
	default:
		b.PrimaryButton(label, action, rollTokenTarget, t.args()...)
	}
}

func messageID(ctx *core.InteractionContext) string {
	if msg := ctx.GetMessage(); msg != nil {
		return msg.ID
	}
	return "<none>"
}
