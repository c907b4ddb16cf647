package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/limbo/moodscript/pkg/ratelimit"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// RateLimiter decides whether the caller identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}
