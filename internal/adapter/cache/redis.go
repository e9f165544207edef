// Package cache provides a Redis-backed result cache so repeated searches
// with identical parameters skip the upstream flight source entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/usecase"
)

const keyPrefix = "flightfinder:search:"

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultConfig returns settings for a local Redis with a TTL long enough
// to absorb repeated searches without serving stale fares for days.
func DefaultConfig() Config {
	return Config{
		Addr: "localhost:6379",
		TTL:  6 * time.Hour,
	}
}

// RedisCache is a usecase.ResultCache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// Get returns the cached result for the given parameters, if present.
// Corrupt or missing entries report a miss rather than an error; the
// caller falls through to a live search either way.
func (c *RedisCache) Get(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, bool) {
	data, err := c.client.Get(ctx, cacheKey(params)).Bytes()
	if err != nil {
		return nil, false
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}

	return &result, true
}

// Set stores a search result under the parameter-derived key.
func (c *RedisCache) Set(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cacheKey(params), data, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// cacheKey hashes the full parameter struct so every field that changes
// the result set changes the key.
func cacheKey(params domain.SearchParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(hash[:])
}

var _ usecase.ResultCache = (*RedisCache)(nil)
