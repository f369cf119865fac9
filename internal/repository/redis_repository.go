package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCacheEntryRepository stores cache entries as plain redis strings
type RedisCacheEntryRepository struct {
	client redis.UniversalClient
}

// NewRedisCacheEntryRepository creates a CacheEntryRepository backed by client
func NewRedisCacheEntryRepository(client redis.UniversalClient) CacheEntryRepository {
	return &RedisCacheEntryRepository{client: client}
}

// Get returns the string stored under key
func (r *RedisCacheEntryRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrEntryNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load cache entry %q: %w", key, err)
	}
	return value, nil
}

// Put sets key without expiry
func (r *RedisCacheEntryRepository) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to store cache entry %q: %w", key, err)
	}
	return nil
}
