package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"idlepoker-server/internal/config"
	"idlepoker-server/pkg/db"
)

// ErrNotFound is returned when there is no save to load
var ErrNotFound = errors.New("save not found")

// Store persists the save of a single run
type Store interface {
	// Load returns the saved data, or ErrNotFound
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the saved data
	Save(ctx context.Context, data []byte) error
	// Delete removes the saved data, deleting a missing save is not an error
	Delete(ctx context.Context) error
}

// New returns the store selected by the configuration
func New(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return NewMemory(), nil
	case config.StoreFile:
		return NewFile(cfg.Store.Path), nil
	case config.StorePostgres:
		dbh, err := db.Open(cfg.PGDSN)
		if err != nil {
			return nil, fmt.Errorf("could not connect to postgres: %w", err)
		}

		return NewPostgres(dbh, cfg.Store.Slot), nil
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}

		return NewRedis(rdb, cfg.Store.Slot), nil
	}

	return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
}
