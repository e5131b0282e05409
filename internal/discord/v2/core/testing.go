package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext creates an InteractionContext for testing
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	ctx := &InteractionContext{
		Context:   context.Background(),
		UserID:    "111111111111111111",
		GuildID:   "222222222222222222",
		ChannelID: "333333333333333333",
		params:    make(map[string]interface{}),
	}

	return &TestInteractionContext{InteractionContext: ctx}
}

// WithParam sets a command option
func (t *TestInteractionContext) WithParam(key string, value interface{}) *TestInteractionContext {
	t.params[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// WithChannelID sets the channel ID
func (t *TestInteractionContext) WithChannelID(channelID string) *TestInteractionContext {
	t.ChannelID = channelID
	return t
}

// WithPermissions sets the member's resolved channel permissions
func (t *TestInteractionContext) WithPermissions(perms int64) *TestInteractionContext {
	t.ensureInteraction()
	t.Member = &discordgo.Member{
		User:        &discordgo.User{ID: t.UserID},
		Permissions: perms,
	}
	t.Interaction.Member = t.Member
	return t
}

// AsCommand simulates a command interaction
func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: t.ChannelID,
			Member:    t.Member,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}

	if len(subcommand) > 0 {
		t.params["subcommand"] = subcommand[0]
	}

	return t
}

// AsComponent simulates a component interaction
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: t.ChannelID,
			Member:    t.Member,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
	return t
}

// WithMessage attaches the message a component was pressed on, rendered as an embed
func (t *TestInteractionContext) WithMessage(description string) *TestInteractionContext {
	t.ensureInteraction()
	t.Interaction.Message = &discordgo.Message{
		ID:        "444444444444444444",
		ChannelID: t.ChannelID,
		Embeds:    []*discordgo.MessageEmbed{{Description: description}},
	}
	return t
}

func (t *TestInteractionContext) ensureInteraction() {
	if t.Interaction == nil {
		t.Interaction = &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	}
}

// NewCommandInteraction builds a slash command event as discordgo delivers it
func NewCommandInteraction(name, userID, channelID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-" + name,
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: channelID,
			GuildID:   "222222222222222222",
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
		},
	}
}

// NewComponentInteraction builds a button press on a message whose embed holds description
func NewComponentInteraction(customID, userID, channelID, description string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-" + customID,
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: channelID,
			GuildID:   "222222222222222222",
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
			Message: &discordgo.Message{
				ID:        "444444444444444444",
				ChannelID: channelID,
				Embeds:    []*discordgo.MessageEmbed{{Description: description}},
			},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
}

// MockResponder is a test implementation of InteractionResponder
type MockResponder struct {
	mu           sync.Mutex
	DeferCalls   []bool // Track ephemeral flags
	Responses    []*Response
	Edits        []*Response
	FollowUps    []*Response
	DeferError   error
	RespondError error
	EditError    error
	Deferred     bool
	Responded    bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Factory returns a ResponderFactory that always hands out m
func (m *MockResponder) Factory() ResponderFactory {
	return func(*discordgo.Session, *discordgo.InteractionCreate) InteractionResponder {
		return m
	}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	if m.DeferError != nil {
		return m.DeferError
	}
	m.Deferred = true
	m.Responded = true
	return nil
}

func (m *MockResponder) Respond(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses = append(m.Responses, response)
	if m.RespondError != nil {
		return m.RespondError
	}
	m.Responded = true
	return nil
}

func (m *MockResponder) Edit(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "test-message-123"}, nil
}

func (m *MockResponder) HasResponded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Deferred
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
