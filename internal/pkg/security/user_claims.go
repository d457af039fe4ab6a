package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer               = "Reunite"
	defaultJWTExpiration = time.Hour * 24
)

var (
	jwtSecret     = []byte("reunite-dev-secret")
	jwtExpiration = defaultJWTExpiration
)

// UserClaims Token 中只携带用户 ID，角色与状态以数据库为准
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// InitJWT 使用配置覆盖签名密钥与有效期
func InitJWT(secret string, expireHours int) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if expireHours > 0 {
		jwtExpiration = time.Duration(expireHours) * time.Hour
	} else {
		jwtExpiration = defaultJWTExpiration
	}
}
