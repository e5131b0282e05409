package handlers_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
)

type fakeRegistrar struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (f *fakeRegistrar) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.appID = appID
	f.guildID = guildID
	f.commands = commands
	if f.err != nil {
		return nil, f.err
	}
	return commands, nil
}

func TestCommands(t *testing.T) {
	commands := handlers.Commands(dice.BuiltinCatalog())

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"roll", "settings", "coin", "d6", "help"}, names)

	rollOpt := commands[0].Options[0]
	assert.Equal(t, "dice", rollOpt.Name)
	assert.False(t, rollOpt.Required)
	require.NotNil(t, rollOpt.MinValue)
	assert.Equal(t, float64(1), *rollOpt.MinValue)
	assert.Equal(t, float64(10), rollOpt.MaxValue)

	setOpt := commands[1].Options[0]
	assert.Equal(t, "dice_set", setOpt.Name)
	require.Len(t, setOpt.Choices, 3)
	assert.Equal(t, "pips", setOpt.Choices[1].Value)
}

func TestRegisterCommands(t *testing.T) {
	reg := &fakeRegistrar{}

	require.NoError(t, handlers.RegisterCommands(reg, "app", "guild", dice.BuiltinCatalog()))
	assert.Equal(t, "app", reg.appID)
	assert.Equal(t, "guild", reg.guildID)
	assert.Len(t, reg.commands, 5)
}

func TestRegisterCommands_Error(t *testing.T) {
	reg := &fakeRegistrar{err: errors.New("401 Unauthorized")}

	err := handlers.RegisterCommands(reg, "app", "", dice.BuiltinCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
