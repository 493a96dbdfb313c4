package database

import (
	"context"
	"errors"
	"log"
	"time"

	"salonkit/config"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a record id does not resolve in a collection.
var ErrNotFound = errors.New("record not found")

// Store is the key-value persistence contract the storage adapter runs on.
// Implementations must treat values as opaque bytes; a missing key yields
// (nil, nil), not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// KV is the process-wide store instance.
var KV Store

// InitKV initializes the Redis-backed key-value store from AppConfig.
func InitKV() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	KV = NewRedisStore(client, config.AppConfig.StoragePrefix)
}

// GetKV returns the process-wide store, initializing it on first use.
func GetKV() Store {
	if KV == nil {
		InitKV()
	}
	return KV
}

// RedisStore implements Store on a Redis client. Every key is namespaced
// with a prefix so unrelated data can share the instance.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps a Redis client as a Store.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}
