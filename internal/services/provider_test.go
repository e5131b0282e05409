package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/outgunned-bot/internal/dice/mock"
	"github.com/KirkDiggler/outgunned-bot/internal/events"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

func TestNewProvider_Defaults(t *testing.T) {
	provider, err := services.NewProvider(nil)
	require.NoError(t, err)

	assert.NotNil(t, provider.RollerService)
	assert.NotNil(t, provider.SettingsService)
	assert.NotNil(t, provider.DiceRoller)
	assert.NotNil(t, provider.Generator)
	assert.NotNil(t, provider.Parser)
	assert.NotNil(t, provider.Events)
	assert.Equal(t, "basic", provider.Catalog.Default().Name())

	set, err := provider.SettingsService.GetDiceSet(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, "basic", set.Name())
}

func TestNewProvider_UsesGivenDependencies(t *testing.T) {
	repo := channels.NewInMemoryRepository()
	require.NoError(t, repo.SetDiceSet(context.Background(), "100", "pips"))

	bus := events.NewBus()
	counter := events.NewCounter()
	bus.Subscribe(counter, events.EventTypeRolled, events.EventTypeFollowUpApplied)

	provider, err := services.NewProvider(&services.ProviderConfig{
		ChannelRepository: repo,
		DiceRoller:        mockdice.NewManualMockRoller(6, 6, 1, 4),
		Events:            bus,
	})
	require.NoError(t, err)

	set, err := provider.SettingsService.GetDiceSet(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, "pips", set.Name())

	h, err := provider.RollerService.Roll(3)
	require.NoError(t, err)
	require.NoError(t, provider.RollerService.AllIn(h))

	latest, _ := h.Latest()
	assert.Equal(t, []int{6, 6, 4}, latest.Dice)
	assert.Equal(t, 1, counter.Count(events.EventTypeRolled))
	assert.Equal(t, 1, counter.Count(events.EventTypeFollowUpApplied))
}
