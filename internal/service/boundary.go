package service

import (
	"context"
	"io"
	"time"
)

// TokenStore Token 吊销名单
type TokenStore interface {
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
	IsRevoked(ctx context.Context, signature string) (bool, error)
}

// Cache 字符串键值缓存
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MediaStorage 图片存储，Upload 返回可公开访问的地址
type MediaStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}
