package core

import (
	"github.com/bwmarrin/discordgo"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Defer acknowledges the interaction, optionally ephemeral
	Defer(ephemeral bool) error

	// Respond sends the initial response. Update responses replace the
	// component's message instead of posting a new one.
	Respond(response *Response) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	// FollowUp sends an additional message after the initial response
	FollowUp(response *Response) (*discordgo.Message, error)

	HasResponded() bool
	IsDeferred() bool
}

// ResponderFactory creates the responder for one interaction
type ResponderFactory func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	responded   bool
	deferred    bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Defer sends a deferred response
func (r *DiscordResponder) Defer(ephemeral bool) error {
	if r.responded || r.deferred {
		return boterr.New(boterr.CodeDelivery, "interaction already responded to")
	}

	responseType := discordgo.InteractionResponseDeferredChannelMessageWithSource
	if r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseDeferredMessageUpdate
	}

	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
	if err != nil {
		return boterr.Delivery(err, "failed to defer interaction")
	}

	r.deferred = true
	r.responded = true
	return nil
}

// Respond sends an immediate response
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return r.Edit(response)
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update && r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: buildResponseData(response),
	})
	if err != nil {
		return boterr.Delivery(err, "failed to respond to interaction")
	}

	r.responded = true
	return nil
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return boterr.New(boterr.CodeDelivery, "cannot edit before responding")
	}

	webhook := &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		Components:      &response.Components,
		AllowedMentions: response.AllowedMentions,
	}

	if _, err := r.session.InteractionResponseEdit(r.interaction.Interaction, webhook); err != nil {
		return boterr.Delivery(err, "failed to edit interaction response")
	}
	return nil
}

// FollowUp sends an additional message after the initial response
func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.responded {
		return nil, boterr.New(boterr.CodeDelivery, "cannot follow up before responding")
	}

	params := &discordgo.WebhookParams{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}
	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	msg, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, params)
	if err != nil {
		return nil, boterr.Delivery(err, "failed to send follow-up")
	}
	return msg, nil
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

// IsDeferred returns whether this responder has sent a deferred response
func (r *DiscordResponder) IsDeferred() bool {
	return r.deferred
}

func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}

	// updates keep the message's visibility; only new messages may be ephemeral
	if response.Ephemeral && !response.Update {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	// an update with no components must clear the old buttons explicitly
	if response.Update && data.Components == nil {
		data.Components = []discordgo.MessageComponent{}
	}

	return data
}
