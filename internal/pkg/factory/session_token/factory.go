package session_token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const tokenBytes = 32

type TokenFactory struct {
	ttl time.Duration
}

func New(ttl time.Duration) *TokenFactory {
	return &TokenFactory{ttl: ttl}
}

// NewToken случайный непрозрачный токен, уходит клиенту в cookie.
func (f *TokenFactory) NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash то, что хранится в сессионном хранилище вместо самого токена.
func (f *TokenFactory) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (f *TokenFactory) CalculateExpiry(baseTime time.Time) time.Time {
	return baseTime.Add(f.ttl)
}
