// Package postgres provides the GORM-backed storage backend. Records are
// stored as jsonb values keyed by an opaque string, so the relational store
// serves the same key-value contract as the other backends.
package postgres

import (
	"context"
	"errors"

	"foodhub/internal/core/ports"

	"gorm.io/gorm"
)

// Record is the database row for one stored value.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"type:jsonb;column:value"`
}

// TableName overrides GORM's default naming convention.
func (Record) TableName() string {
	return "kv_records"
}

// Backend implements ports.Backend on a Postgres table.
type Backend struct {
	db *gorm.DB
}

// NewBackend creates a Postgres backend and migrates its table.
func NewBackend(db *gorm.DB) (*Backend, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Backend{db: db}, nil
}

// Get returns the value stored under key, or ports.ErrKeyNotFound.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var record Record
	if err := b.db.WithContext(ctx).First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, err
	}
	return record.Value, nil
}

// Put stores value under key, overwriting any previous value.
func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	record := Record{Key: key, Value: value}
	return b.db.WithContext(ctx).Save(&record).Error
}

// Delete removes key and reports whether it existed.
func (b *Backend) Delete(ctx context.Context, key string) (bool, error) {
	result := b.db.WithContext(ctx).Delete(&Record{}, "key = ?", key)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListKeys returns every stored key with the given prefix.
func (b *Backend) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := b.db.WithContext(ctx).
		Model(&Record{}).
		Where("key LIKE ?", prefix+"%").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
