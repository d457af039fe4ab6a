package redis

import (
	"context"
	"time"
)

// Cache 简单的字符串缓存
type Cache struct{}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return GetValue(ctx, key)
}

func (c *Cache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return SetWithExpiration(ctx, key, value, ttl)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return DeleteKey(ctx, key)
}
