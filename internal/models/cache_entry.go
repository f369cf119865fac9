package models

import "time"

// CacheEntry is a persisted key-value pair backing the soft-delete caches.
type CacheEntry struct {
	Key       string    `gorm:"primarykey;column:cache_key;type:varchar(191)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
