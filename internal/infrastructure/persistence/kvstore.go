package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValueStore is the persisted-state contract every collection sits on:
// Load decodes the value under a key into dst and reports whether it
// succeeded, leaving dst untouched otherwise; Save encodes and writes
// best-effort. Neither surfaces an error to the caller - a failed read
// falls back to the caller's default, a failed write is dropped.
type KeyValueStore interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, value any)
}

// kvEntry is the single-table storage model: one row per logical collection.
type kvEntry struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormStore is the durable KeyValueStore over SQLite.
type GormStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGormStore creates a durable store on the given database
func NewGormStore(db *Database, log *zap.Logger) *GormStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &GormStore{db: db.DB, log: log.Named("kvstore")}
}

// Load reads and decodes the value under key into dst. A missing row or a
// decode failure leaves dst untouched and returns false.
func (s *GormStore) Load(ctx context.Context, key string, dst any) bool {
	var entry kvEntry
	if err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("Load failed, falling back to default",
				zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), dst); err != nil {
		s.log.Warn("Stored value is not decodable, falling back to default",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save encodes value and upserts it under key. Failures are logged and
// dropped; the write is best-effort.
func (s *GormStore) Save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("Value is not encodable, write dropped",
			zap.String("key", key), zap.Error(err))
		return
	}
	entry := kvEntry{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		s.log.Warn("Write failed and was dropped",
			zap.String("key", key), zap.Error(err))
	}
}

// MemoryStore is an in-memory KeyValueStore for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Load implements KeyValueStore
func (s *MemoryStore) Load(_ context.Context, key string, dst any) bool {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

// Save implements KeyValueStore
func (s *MemoryStore) Save(_ context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.entries[key] = string(raw)
	s.mu.Unlock()
}

// Put stores a raw pre-encoded value, useful for seeding corrupt data in tests
func (s *MemoryStore) Put(key, raw string) {
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
}
