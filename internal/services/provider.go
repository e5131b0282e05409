package services

import (
	"fmt"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/rulebook/outgunned"
	"github.com/KirkDiggler/outgunned-bot/internal/events"
	"github.com/KirkDiggler/outgunned-bot/internal/message"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
	"github.com/KirkDiggler/outgunned-bot/internal/services/roller"
	"github.com/KirkDiggler/outgunned-bot/internal/services/settings"
)

// Provider holds all service instances
type Provider struct {
	RollerService   roller.Service
	SettingsService settings.Service
	DiceRoller      dice.Roller
	Catalog         *dice.Catalog
	Generator       *message.Generator
	Parser          *message.Parser
	Events          *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ChannelRepository channels.Repository
	DiceRoller        dice.Roller
	Catalog           *dice.Catalog

	// Events receives every roll transition; a bus that logs them is
	// created if nil
	Events *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	channelRepo := cfg.ChannelRepository
	if channelRepo == nil {
		channelRepo = channels.NewInMemoryRepository()
	}

	diceRoller := cfg.DiceRoller
	if diceRoller == nil {
		diceRoller = dice.NewRoller()
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = dice.BuiltinCatalog()
	}

	bus := cfg.Events
	if bus == nil {
		bus = events.NewBus()
		bus.Subscribe(events.LogListener{}, events.EventTypeRolled, events.EventTypeFollowUpApplied)
	}

	rollerService, err := roller.NewService(&roller.ServiceConfig{
		DiceRoller:  diceRoller,
		Eligibility: outgunned.Eligibility,
		Keep:        outgunned.Keep,
		Events:      bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roller service: %w", err)
	}

	settingsService, err := settings.NewService(&settings.ServiceConfig{
		Repository: channelRepo,
		Catalog:    catalog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}

	return &Provider{
		RollerService:   rollerService,
		SettingsService: settingsService,
		DiceRoller:      diceRoller,
		Catalog:         catalog,
		Generator:       message.NewGenerator(nil),
		Parser:          message.NewParser(),
		Events:          bus,
	}, nil
}
