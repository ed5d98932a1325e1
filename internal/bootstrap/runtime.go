// Package bootstrap wires the storage backends selected by configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gamechanger/internal/cache"
	"gamechanger/internal/config"
	"gamechanger/internal/database"
	"gamechanger/internal/repository"
	"gamechanger/internal/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Runtime holds the connections shared by the server and the CLI.
type Runtime struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Records repository.RecordRepository
	Catalog repository.CatalogRepository
}

// InitRuntime connects the configured record store. Redis is also used for
// rate limiting when REDIS_URL is set; an unreachable server only disables
// that unless redis is the record store.
func InitRuntime(cfg *config.Config) (*Runtime, error) {
	rt := &Runtime{Catalog: repository.NewCatalogRepository(cfg.CatalogPath)}

	switch cfg.StorageDriver {
	case config.StorageSQLite, config.StoragePostgres:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		rt.DB = db
	}

	if cfg.RedisURL != "" {
		cache.InitRedis(cfg.RedisURL)
		rt.Redis = cache.GetClient()
	}
	if cfg.StorageDriver == config.StorageRedis && rt.Redis == nil {
		rt.Close()
		return nil, errors.New("redis record store selected but redis is unreachable")
	}

	records, err := repository.NewRecordRepositoryFromConfig(cfg, rt.DB, rt.Redis)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.Records = records
	return rt, nil
}

// OpenSession restores the session persisted in the runtime's record store.
func (rt *Runtime) OpenSession(ctx context.Context, cfg *config.Config) *session.Store {
	return session.Open(ctx, rt.Records, session.Options{Key: cfg.SessionKey})
}

// Ping checks every configured backend.
func (rt *Runtime) Ping(ctx context.Context) error {
	if rt.DB != nil {
		if err := database.Ping(ctx, rt.DB); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if hc, ok := rt.Records.(repository.HealthChecker); ok {
		if err := hc.Ping(ctx); err != nil {
			return fmt.Errorf("record store: %w", err)
		}
	}
	return nil
}

// Close releases database and redis connections.
func (rt *Runtime) Close() {
	if rt.DB != nil {
		if sqlDB, err := rt.DB.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				log.Printf("error closing sql DB: %v", cerr)
			}
		}
		rt.DB = nil
	}
	if rt.Redis != nil {
		if err := cache.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
		rt.Redis = nil
	}
}
