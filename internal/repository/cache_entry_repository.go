package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hr-dashboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCacheEntryRepository is a GORM implementation of CacheEntryRepository
type GormCacheEntryRepository struct {
	db *gorm.DB
}

// NewCacheEntryRepository creates a new CacheEntryRepository backed by db
func NewCacheEntryRepository(db *gorm.DB) CacheEntryRepository {
	return &GormCacheEntryRepository{db: db}
}

// Get finds the entry stored under key
func (r *GormCacheEntryRepository) Get(ctx context.Context, key string) (string, error) {
	var entry models.CacheEntry
	err := r.db.WithContext(ctx).Where("cache_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrEntryNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load cache entry %q: %w", key, err)
	}
	return entry.Value, nil
}

// Put upserts the entry stored under key
func (r *GormCacheEntryRepository) Put(ctx context.Context, key, value string) error {
	entry := models.CacheEntry{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to store cache entry %q: %w", key, err)
	}
	return nil
}
