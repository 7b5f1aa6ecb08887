// Package redisstore backs the profile store with Redis. Profiles and
// route results are stored as JSON blobs under the keys built by the
// domain package; Redis owns expiry via per-key TTLs.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Store implements domain.ProfileStore on top of Redis.
type Store struct {
	client *redis.Client
	log    *logger.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg Config, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Msg("connected to redis")
	return &Store{client: client, log: log}, nil
}

// Get fetches the raw JSON stored under key. A missing key and a Redis
// failure both report a miss; failures are logged, never surfaced.
func (s *Store) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("redis get failed")
		}
		return nil, false
	}
	return data, true
}

// Put marshals value and stores it under key with the given TTL.
func (s *Store) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
