package accountsource

import (
	"context"
	"fmt"
	"time"

	"dex-cpi-sol/internal/types"

	"github.com/redis/go-redis/v9"
)

const accountKeyPrefix = "cpi:account"

// RedisCache 以地址为 key 缓存账户原始数据
type RedisCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisCache(rdb redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func accountKey(addr types.Pubkey) string {
	return fmt.Sprintf("%s:%s", accountKeyPrefix, addr)
}

func (r *RedisCache) Get(ctx context.Context, addrs []types.Pubkey) ([][]byte, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	keys := make([]string, len(addrs))
	for i, addr := range addrs {
		keys[i] = accountKey(addr)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget error: %w", err)
	}

	out := make([][]byte, len(addrs))
	for i, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			out[i] = []byte(s)
		}
	}
	return out, nil
}

func (r *RedisCache) Put(ctx context.Context, accounts map[types.Pubkey][]byte) error {
	if len(accounts) == 0 {
		return nil
	}
	pipe := r.rdb.Pipeline()
	for addr, data := range accounts {
		if len(data) == 0 {
			continue
		}
		pipe.Set(ctx, accountKey(addr), data, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline error: %w", err)
	}
	return nil
}
