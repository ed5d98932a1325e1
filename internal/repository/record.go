// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gamechanger/internal/cache"
	"gamechanger/internal/config"
	"gamechanger/internal/database"
	"gamechanger/internal/models"
	"gamechanger/internal/observability"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordRepository is a key/value store for small persisted records.
type RecordRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// HealthChecker is implemented by stores that can report backend reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// NewRecordRepositoryFromConfig creates a RecordRepository for the configured storage driver.
// db is required for sqlite and postgres, rdb for redis.
func NewRecordRepositoryFromConfig(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (RecordRepository, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite, config.StoragePostgres:
		if db == nil {
			return nil, fmt.Errorf("%s record store requires a database connection", cfg.StorageDriver)
		}
		return NewGormRecordRepository(db), nil
	case config.StorageRedis:
		if rdb == nil {
			return nil, errors.New("redis record store requires a redis client")
		}
		return NewRedisRecordRepository(rdb), nil
	case config.StorageMemory:
		return NewMemoryRecordRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}

type gormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository returns a RecordRepository backed by the records table.
func NewGormRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

func (r *gormRecordRepository) driver() string {
	return r.db.Dialector.Name()
}

func (r *gormRecordRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, span := observability.TraceRecordOp(ctx, r.driver(), "get")
	defer span.End()
	defer observability.TrackRecordOp(r.driver(), "get")()

	var rec models.Record
	if err := r.db.WithContext(ctx).Where("key = ?", key).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		span.RecordError(err)
		return nil, false, models.NewInternalError(err)
	}
	return []byte(rec.Value), true, nil
}

func (r *gormRecordRepository) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := observability.TraceRecordOp(ctx, r.driver(), "put")
	defer span.End()
	defer observability.TrackRecordOp(r.driver(), "put")()

	rec := models.Record{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *gormRecordRepository) Delete(ctx context.Context, key string) error {
	ctx, span := observability.TraceRecordOp(ctx, r.driver(), "delete")
	defer span.End()
	defer observability.TrackRecordOp(r.driver(), "delete")()

	if err := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.Record{}).Error; err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *gormRecordRepository) Ping(ctx context.Context) error {
	return database.Ping(ctx, r.db)
}

type redisRecordRepository struct {
	rdb *redis.Client
}

// NewRedisRecordRepository returns a RecordRepository storing records as plain Redis strings.
func NewRedisRecordRepository(rdb *redis.Client) RecordRepository {
	return &redisRecordRepository{rdb: rdb}
}

func (r *redisRecordRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, span := observability.TraceRecordOp(ctx, "redis", "get")
	defer span.End()
	defer observability.TrackRecordOp("redis", "get")()

	val, err := r.rdb.Get(ctx, cache.RecordKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, false, models.NewInternalError(err)
	}
	return val, true, nil
}

func (r *redisRecordRepository) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := observability.TraceRecordOp(ctx, "redis", "put")
	defer span.End()
	defer observability.TrackRecordOp("redis", "put")()

	if err := r.rdb.Set(ctx, cache.RecordKey(key), value, 0).Err(); err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *redisRecordRepository) Delete(ctx context.Context, key string) error {
	ctx, span := observability.TraceRecordOp(ctx, "redis", "delete")
	defer span.End()
	defer observability.TrackRecordOp("redis", "delete")()

	if err := r.rdb.Del(ctx, cache.RecordKey(key)).Err(); err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *redisRecordRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// MemoryRecordRepository is an in-memory RecordRepository.
// This implementation is safe for concurrent use.
type MemoryRecordRepository struct {
	records map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryRecordRepository creates an empty in-memory record store.
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{records: make(map[string][]byte)}
}

func (m *MemoryRecordRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (m *MemoryRecordRepository) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = stored
	return nil
}

func (m *MemoryRecordRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

// Len reports how many records are stored.
func (m *MemoryRecordRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
