package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avoronkov/stockfolio"
)

const (
	redisKeyPrefix = "stockfolio:txs:"
	redisTTL       = 24 * time.Hour
)

// RedisBackend caches histories in Redis, JSONL-encoded, so several
// processes can share one cache. Entries expire after a day as a
// safety net; writes invalidate them explicitly long before that.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) key(portfolio string) string {
	return redisKeyPrefix + portfolio
}

func (b *RedisBackend) Get(ctx context.Context, portfolio string) ([]stockfolio.Transaction, bool, error) {
	data, err := b.client.Get(ctx, b.key(portfolio)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	txs, err := stockfolio.DecodeTransactions(strings.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return txs, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, portfolio string, txs []stockfolio.Transaction) error {
	var buf bytes.Buffer
	if err := stockfolio.EncodeTransactions(&buf, txs); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	if err := b.client.Set(ctx, b.key(portfolio), buf.String(), redisTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context, portfolio string) error {
	if err := b.client.Del(ctx, b.key(portfolio)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
