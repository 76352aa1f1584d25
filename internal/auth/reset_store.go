package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"subtrack/internal/cache"
)

// ResetTokenTTL is the lifetime of a password reset token.
const ResetTokenTTL = time.Hour

const resetTokenKeyPrefix = "reset_token:"

// ResetStore defines the interface for password-reset token storage.
// Tokens are single-use: Consume removes the token as it reads it.
type ResetStore interface {
	Issue(ctx context.Context, email string) (token string, err error)
	Consume(ctx context.Context, token string) (email string, err error)
}

// RedisResetStore keeps reset tokens in Redis with a TTL, so expiry needs no
// sweeper and consumption is atomic via GETDEL.
type RedisResetStore struct {
	cache *cache.Client
}

var _ ResetStore = (*RedisResetStore)(nil)

// NewResetStore creates a Redis-backed reset token store.
func NewResetStore(cache *cache.Client) *RedisResetStore {
	return &RedisResetStore{cache: cache}
}

// Issue generates a random token bound to email for ResetTokenTTL.
func (s *RedisResetStore) Issue(ctx context.Context, email string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.cache.Set(ctx, resetTokenKeyPrefix+token, []byte(email), ResetTokenTTL); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// Consume redeems a token, returning the bound email. Unknown, expired and
// already-consumed tokens are indistinguishable: all return an error.
func (s *RedisResetStore) Consume(ctx context.Context, token string) (string, error) {
	data, err := s.cache.GetDel(ctx, resetTokenKeyPrefix+token)
	if err != nil {
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	if data == nil {
		return "", fmt.Errorf("reset token not found")
	}
	return string(data), nil
}
