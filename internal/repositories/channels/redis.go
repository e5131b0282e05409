package channels

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// DiceSetsKey is the hash holding channel ID -> dice set name
const DiceSetsKey = "channel:dice_sets"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, boterr.InvalidArgument("redis client is required")
	}

	return &redisRepo{client: cfg.Client}, nil
}

func (r *redisRepo) GetDiceSet(ctx context.Context, channelID string) (string, error) {
	if channelID == "" {
		return "", boterr.InvalidArgument("channel ID is required")
	}

	name, err := r.client.HGet(ctx, DiceSetsKey, channelID).Result()
	if errors.Is(err, redis.Nil) {
		return "", boterr.NotFoundf("no dice set for channel %s", channelID)
	}
	if err != nil {
		return "", boterr.Wrapf(err, "failed to read dice set for channel %s", channelID)
	}

	return name, nil
}

func (r *redisRepo) SetDiceSet(ctx context.Context, channelID, diceSet string) error {
	if channelID == "" || diceSet == "" {
		return boterr.InvalidArgument("channel ID and dice set are required")
	}

	if err := r.client.HSet(ctx, DiceSetsKey, channelID, diceSet).Err(); err != nil {
		return boterr.Wrapf(err, "failed to store dice set for channel %s", channelID)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) (map[string]string, error) {
	all, err := r.client.HGetAll(ctx, DiceSetsKey).Result()
	if err != nil {
		return nil, boterr.Wrap(err, "failed to list channel dice sets")
	}
	return all, nil
}
