package repository

import (
	"context"
	"errors"
)

// ErrEntryNotFound is returned when no value is stored under a key.
var ErrEntryNotFound = errors.New("cache entry repository: entry not found")

// CacheEntryRepository defines the interface for the persisted key-value namespace
type CacheEntryRepository interface {
	// Get returns the value stored under key, or ErrEntryNotFound
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key, value string) error
}
