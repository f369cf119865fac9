package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/yukikurage/hr-dashboard/internal/repository"
	"go.uber.org/zap"
)

// Entity is anything the soft-delete cache can hold.
type Entity interface {
	EntityID() uint64
	IsInactive() bool
}

// SoftDeleteCache remembers INACTIVE entities under a single key so they stay
// visible even when the upstream stops listing them.
type SoftDeleteCache[T Entity] struct {
	key    string
	store  repository.CacheEntryRepository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSoftDeleteCache creates a cache persisting under key in store.
func NewSoftDeleteCache[T Entity](key string, store repository.CacheEntryRepository, logger *zap.Logger) *SoftDeleteCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoftDeleteCache[T]{
		key:    key,
		store:  store,
		logger: logger.With(zap.String("cache", key)),
	}
}

// Key returns the namespace the cache persists under.
func (c *SoftDeleteCache[T]) Key() string {
	return c.key
}

// Merge combines serverList with the cached entities and persists the INACTIVE
// subset of the result. Server entries win on id; cache-only entries are
// appended in cached order.
func (c *SoftDeleteCache[T]) Merge(ctx context.Context, serverList []T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := merge(serverList, c.load(ctx))
	c.save(ctx, inactive(merged))
	return merged
}

// View merges like Merge without persisting anything.
func (c *SoftDeleteCache[T]) View(ctx context.Context, serverList []T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return merge(serverList, c.load(ctx))
}

// Sync records the latest known state of entity: it is dropped from the cache
// and re-added only when INACTIVE.
func (c *SoftDeleteCache[T]) Sync(ctx context.Context, entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached := c.load(ctx)
	next := make([]T, 0, len(cached)+1)
	for _, e := range cached {
		if e.EntityID() != entity.EntityID() {
			next = append(next, e)
		}
	}
	if entity.IsInactive() {
		next = append(next, entity)
	}
	c.save(ctx, next)
}

// Entries returns the cached entities.
func (c *SoftDeleteCache[T]) Entries(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

func (c *SoftDeleteCache[T]) load(ctx context.Context) []T {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return []T{}
	}
	if err != nil {
		c.logger.Warn("failed to read soft-delete cache", zap.Error(err))
		return []T{}
	}

	var entries []T
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		c.logger.Warn("discarding malformed soft-delete cache", zap.Error(err))
		return []T{}
	}
	return inactive(entries)
}

func (c *SoftDeleteCache[T]) save(ctx context.Context, entries []T) {
	raw, err := json.Marshal(entries)
	if err != nil {
		c.logger.Error("failed to encode soft-delete cache", zap.Error(err))
		return
	}
	if err := c.store.Put(ctx, c.key, string(raw)); err != nil {
		c.logger.Warn("failed to persist soft-delete cache", zap.Error(err))
	}
}

func merge[T Entity](serverList, cached []T) []T {
	seen := make(map[uint64]struct{}, len(serverList))
	merged := make([]T, 0, len(serverList)+len(cached))

	for _, e := range serverList {
		seen[e.EntityID()] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range cached {
		if _, ok := seen[e.EntityID()]; ok || !e.IsInactive() {
			continue
		}
		seen[e.EntityID()] = struct{}{}
		merged = append(merged, e)
	}

	return merged
}

func inactive[T Entity](entities []T) []T {
	result := make([]T, 0, len(entities))
	for _, e := range entities {
		if e.IsInactive() {
			result = append(result, e)
		}
	}
	return result
}
