package repository

import (
	"context"
	"sync"
)

// MemoryCacheEntryRepository keeps cache entries in process memory
type MemoryCacheEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCacheEntryRepository creates an empty in-memory CacheEntryRepository
func NewMemoryCacheEntryRepository() *MemoryCacheEntryRepository {
	return &MemoryCacheEntryRepository{entries: make(map[string]string)}
}

// Get returns the value stored under key
func (r *MemoryCacheEntryRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[key]
	if !ok {
		return "", ErrEntryNotFound
	}
	return value, nil
}

// Put stores value under key
func (r *MemoryCacheEntryRepository) Put(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = value
	return nil
}
