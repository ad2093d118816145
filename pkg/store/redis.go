package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the save under a key per slot
type Redis struct {
	rdb *redis.Client
	key string
}

// NewRedis returns a Redis store for the slot
func NewRedis(rdb *redis.Client, slot string) *Redis {
	return &Redis{
		rdb: rdb,
		key: saveKey(slot),
	}
}

func saveKey(slot string) string {
	return fmt.Sprintf("idlepoker:save:%s", slot)
}

// Load returns the save for the slot
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	return data, err
}

// Save replaces the save for the slot, it never expires
func (r *Redis) Save(ctx context.Context, data []byte) error {
	return r.rdb.Set(ctx, r.key, data, 0).Err()
}

// Delete removes the save for the slot
func (r *Redis) Delete(ctx context.Context) error {
	return r.rdb.Del(ctx, r.key).Err()
}
