package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Discord allows five components per action row and five rows per message
const (
	maxPerRow = 5
	maxRows   = 5
)

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
	err             error
}

// NewComponentBuilder creates a new component builder. customIDBuilder may be
// nil when every button carries its own custom ID.
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		currentRow:      make([]discordgo.MessageComponent, 0, maxPerRow),
		customIDBuilder: customIDBuilder,
	}
}

// Button adds a button whose custom ID is built from the domain builder
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	if b.customIDBuilder == nil {
		b.fail(boterr.Internal("button needs a custom ID builder"))
		return b
	}

	customID, err := b.customIDBuilder.Button(action, target, args...)
	if err != nil {
		b.fail(err)
		return b
	}
	return b.ButtonWithID(label, style, customID)
}

// ButtonWithID adds a button with a pre-encoded custom ID
func (b *ComponentBuilder) ButtonWithID(label string, style discordgo.ButtonStyle, customID string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxPerRow)
	}
	return b
}

// Build returns the built components, or the first error hit while adding them.
// No components yields an empty, non-nil slice so updates clear old buttons.
func (b *ComponentBuilder) Build() ([]discordgo.MessageComponent, error) {
	if b.err != nil {
		return nil, b.err
	}

	b.NewRow()
	if len(b.rows) > maxRows {
		return nil, boterr.Internalf("%d action rows exceed the limit of %d", len(b.rows), maxRows)
	}

	rows := make([]discordgo.MessageComponent, len(b.rows))
	copy(rows, b.rows)
	return rows, nil
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}

func (b *ComponentBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Button style helpers
func (b *ComponentBuilder) PrimaryButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.PrimaryButton, action, target, args...)
}

func (b *ComponentBuilder) SuccessButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SuccessButton, action, target, args...)
}

func (b *ComponentBuilder) DangerButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.DangerButton, action, target, args...)
}
