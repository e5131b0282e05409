package channels

import (
	"context"
	"sync"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// InMemoryRepository keeps channel settings for the life of the process
type InMemoryRepository struct {
	mu       sync.RWMutex
	diceSets map[string]string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		diceSets: make(map[string]string),
	}
}

func (r *InMemoryRepository) GetDiceSet(_ context.Context, channelID string) (string, error) {
	if channelID == "" {
		return "", boterr.InvalidArgument("channel ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.diceSets[channelID]
	if !ok {
		return "", boterr.NotFoundf("no dice set for channel %s", channelID)
	}
	return name, nil
}

func (r *InMemoryRepository) SetDiceSet(_ context.Context, channelID, diceSet string) error {
	if channelID == "" || diceSet == "" {
		return boterr.InvalidArgument("channel ID and dice set are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.diceSets[channelID] = diceSet
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.diceSets))
	for k, v := range r.diceSets {
		out[k] = v
	}
	return out, nil
}
