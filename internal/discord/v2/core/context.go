package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	responderKey contextKey = "responder"
)

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	// Core Discord objects
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	UserID    string
	GuildID   string
	ChannelID string
	Member    *discordgo.Member

	// Context for cancellation and values
	Context context.Context

	// Command options by name, plus "subcommand"
	params map[string]interface{}
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		params:      make(map[string]interface{}),
	}

	// guild interactions carry the member, DMs carry the user
	if i.Member != nil && i.Member.User != nil {
		ic.Member = i.Member
		ic.UserID = i.Member.User.ID
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}

	if ic.IsCommand() {
		ic.parseOptions(i.ApplicationCommandData().Options)
	}

	return ic
}

// parseOptions recursively extracts command options
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
			opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
			continue
		}
		ic.params[opt.Name] = opt.Value
	}
}

// HasParam reports whether an option was supplied
func (ic *InteractionContext) HasParam(name string) bool {
	_, ok := ic.params[name]
	return ok
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) interface{} {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// GetIntParam retrieves an int parameter or returns 0.
// Discord delivers integer options as float64.
func (ic *InteractionContext) GetIntParam(name string) int {
	if val, ok := ic.params[name]; ok {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		}
	}
	return 0
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// GetCustomID returns the custom ID for component interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	return ""
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// GetMessage returns the message a component is attached to
func (ic *InteractionContext) GetMessage() *discordgo.Message {
	if ic.Interaction == nil {
		return nil
	}
	return ic.Interaction.Message
}

// GetMessageText returns the text a component's message was rendered with:
// the first embed description, or the plain content when there is no embed.
func (ic *InteractionContext) GetMessageText() string {
	msg := ic.GetMessage()
	if msg == nil {
		return ""
	}
	for _, embed := range msg.Embeds {
		if embed != nil && embed.Description != "" {
			return embed.Description
		}
	}
	return msg.Content
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val interface{}) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key interface{}) interface{} {
	return ic.Context.Value(key)
}

// RequestID returns the ID assigned by RequestIDMiddleware, if any
func (ic *InteractionContext) RequestID() string {
	id, _ := ic.Value(requestIDKey).(string)
	return id
}

// SetRequestID stores the request ID on the context
func (ic *InteractionContext) SetRequestID(id string) {
	ic.WithValue(requestIDKey, id)
}

// Responder returns the responder the pipeline attached, if any
func (ic *InteractionContext) Responder() InteractionResponder {
	r, _ := ic.Value(responderKey).(InteractionResponder)
	return r
}
