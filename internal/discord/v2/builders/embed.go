package builders

import (
	"github.com/bwmarrin/discordgo"
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type: discordgo.EmbedTypeRich,
		},
	}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

const (
	ColorGold = 0xf1c40f // rolls and table results
	ColorInfo = 0x0099ff
)

// RollEmbed is the gold embed a roll session lives in. The description holds
// the whole session, so it is the only part read back later.
func RollEmbed(description string) *EmbedBuilder {
	return NewEmbed().
		Description(description).
		Color(ColorGold)
}

// InfoEmbed is used for reference text such as /help
func InfoEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title(title).
		Description(description).
		Color(ColorInfo)
}
