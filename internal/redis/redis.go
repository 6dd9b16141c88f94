package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// ErrNotFound is returned when a key has no value (missing or expired).
var ErrNotFound = errors.New("redis: key not found")

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func sessionKey(token string) string {
	return "session:" + token
}

// SaveSessionSnapshot caches a serialized session state with a TTL.
func SaveSessionSnapshot(ctx context.Context, token string, payload []byte, ttl time.Duration) error {
	if Rdb == nil {
		return errors.New("redis: not initialized")
	}
	if err := Rdb.Set(ctx, sessionKey(token), payload, ttl).Err(); err != nil {
		log.Error().Err(err).Str("token", token).Msg("failed to cache session snapshot")
		return err
	}
	return nil
}

// GetSessionSnapshot returns the cached session state, or ErrNotFound.
func GetSessionSnapshot(ctx context.Context, token string) ([]byte, error) {
	if Rdb == nil {
		return nil, errors.New("redis: not initialized")
	}
	payload, err := Rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// DeleteSessionSnapshot drops the cached state for a closed session.
func DeleteSessionSnapshot(ctx context.Context, token string) error {
	if Rdb == nil {
		return errors.New("redis: not initialized")
	}
	return Rdb.Del(ctx, sessionKey(token)).Err()
}
