package settings

//go:generate mockgen -destination=mock/mock_service.go -package=mocksettings -source=service.go

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
)

// Repository is an alias for the channel configuration repository
type Repository = channels.Repository

// Service resolves and stores the dice set each channel uses
type Service interface {
	// GetDiceSet returns the channel's dice set, or the catalog default when
	// the channel has none or its stored set is no longer known
	GetDiceSet(ctx context.Context, channelID string) (dice.DiceSet, error)

	// SetDiceSet stores the dice set for a channel
	SetDiceSet(ctx context.Context, channelID string, set dice.DiceSet) error

	// List returns every configured channel and its dice set name
	List(ctx context.Context) (map[string]string, error)

	// Catalog returns the dice sets channels may choose from
	Catalog() *dice.Catalog
}

// ServiceConfig holds configuration for the settings service
type ServiceConfig struct {
	Repository Repository    // Required
	Catalog    *dice.Catalog // Optional, defaults to the builtin catalog
}

type service struct {
	repository Repository
	catalog    *dice.Catalog
}

// NewService creates a new settings service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Repository == nil {
		return nil, errors.New("repository is required")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = dice.BuiltinCatalog()
	}

	return &service{
		repository: cfg.Repository,
		catalog:    catalog,
	}, nil
}

func (s *service) GetDiceSet(ctx context.Context, channelID string) (dice.DiceSet, error) {
	if channelID == "" {
		return s.catalog.Default(), nil
	}

	name, err := s.repository.GetDiceSet(ctx, channelID)
	if err != nil {
		if boterr.IsNotFound(err) {
			return s.catalog.Default(), nil
		}
		return dice.DiceSet{}, boterr.Wrapf(err, "failed to load dice set for channel %s", channelID)
	}

	set, err := s.catalog.Parse(name)
	if err != nil {
		log.Printf("[Settings] Channel %s has unknown dice set %q, using %s", channelID, name, s.catalog.Default())
		return s.catalog.Default(), nil
	}

	return set, nil
}

func (s *service) SetDiceSet(ctx context.Context, channelID string, set dice.DiceSet) error {
	if channelID == "" {
		return boterr.InvalidArgument("channel ID is required")
	}

	// only sets from our catalog may be stored
	known, err := s.catalog.Parse(set.String())
	if err != nil {
		return err
	}

	if err := s.repository.SetDiceSet(ctx, channelID, known.String()); err != nil {
		return boterr.Wrapf(err, "failed to save dice set for channel %s", channelID)
	}

	log.Printf("[Settings] Channel %s now uses dice set %s", channelID, known)
	return nil
}

func (s *service) List(ctx context.Context) (map[string]string, error) {
	return s.repository.List(ctx)
}

func (s *service) Catalog() *dice.Catalog {
	return s.catalog
}
