package redis

import (
	"Reunite/internal/pkg/consts"
	"context"
	"time"
)

// TokenStore 基于 Redis 的 Token 黑名单
type TokenStore struct{}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Revoke 将签名加入黑名单，ttl 与 Token 剩余有效期一致
func (s *TokenStore) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

func (s *TokenStore) IsRevoked(ctx context.Context, signature string) (bool, error) {
	return Exists(ctx, consts.TokenBlacklistKey+signature)
}
