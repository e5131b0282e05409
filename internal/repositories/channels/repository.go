// Package channels stores the per-channel dice set choice.
//
// Values are dice set names as produced by dice.DiceSet.String. The
// repository does not check them against the catalog; the settings service
// owns that.
package channels

//go:generate mockgen -destination=mock/mock_repository.go -package=mockchannels -source=repository.go

import (
	"context"
)

// Repository defines the interface for channel configuration storage
type Repository interface {
	// GetDiceSet returns the stored dice set name, or a not found error
	GetDiceSet(ctx context.Context, channelID string) (string, error)

	// SetDiceSet stores the dice set name for a channel, replacing any previous one
	SetDiceSet(ctx context.Context, channelID, diceSet string) error

	// List returns every configured channel and its dice set name
	List(ctx context.Context) (map[string]string, error)
}
