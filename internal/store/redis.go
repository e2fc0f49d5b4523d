package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// documentKey is the single Redis key holding the whole document.
const documentKey = "dairy:document"

// RedisStorage keeps the document blob under one key. GET/SET of the
// full blob preserves the single-writer full-overwrite contract.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(addr, password string) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStorage{client: client}, nil
}

func (r *RedisStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, documentKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisStorage) Save(ctx context.Context, blob []byte) error {
	return r.client.Set(ctx, documentKey, blob, 0).Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}
