package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
)

// Discord allows at most 25 choices per option
const maxChoices = 25

// CommandRegistrar is the part of *discordgo.Session used to publish commands
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

func invalidCountMessage() string {
	return fmt.Sprintf("You can roll between 1 and %d dice.", roll.MaxDice)
}

// Commands returns the slash commands the bot answers
func Commands(catalog *dice.Catalog) []*discordgo.ApplicationCommand {
	minDice := float64(1)

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, set := range catalog.Sets() {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  set.Label(),
			Value: set.String(),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "roll",
			Description: "Roll a pool of d6",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "dice",
					Description: fmt.Sprintf("Number of dice (default %d)", DefaultDiceCount),
					Required:    false,
					MinValue:    &minDice,
					MaxValue:    float64(roll.MaxDice),
				},
			},
		},
		{
			Name:        "settings",
			Description: "Configure the bot for this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "dice_set",
					Description: "How dice are drawn in this channel",
					Required:    true,
					Choices:     choices,
				},
			},
		},
		{
			Name:        "coin",
			Description: "Flip a coin",
		},
		{
			Name:        "d6",
			Description: "Roll a single die",
		},
		{
			Name:        "help",
			Description: "Show how to use the bot",
		},
	}
}

// RegisterCommands replaces the application's commands. An empty guildID
// registers them globally.
func RegisterCommands(registrar CommandRegistrar, appID, guildID string, catalog *dice.Catalog) error {
	commands := Commands(catalog)

	created, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	scope := "globally"
	if guildID != "" {
		scope = "for guild " + guildID
	}
	log.Printf("Registered %d commands %s", len(created), scope)
	return nil
}
