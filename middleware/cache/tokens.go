package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokens keeps one refresh token per user in Redis, expiring with
// the token itself. Like state is deliberately never cached here.
type RefreshTokens struct {
	rdb *redis.Client
}

func NewRefreshTokens() *RefreshTokens {
	return &RefreshTokens{rdb: Rdb}
}

func tokenKey(userId string) string {
	return "refresh_token:" + userId
}

func (s *RefreshTokens) SaveRefreshToken(ctx context.Context, userId, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKey(userId), token, ttl).Err()
}

func (s *RefreshTokens) GetRefreshToken(ctx context.Context, userId string) (string, error) {
	token, err := s.rdb.Get(ctx, tokenKey(userId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (s *RefreshTokens) DropRefreshToken(ctx context.Context, userId string) error {
	return s.rdb.Del(ctx, tokenKey(userId)).Err()
}
