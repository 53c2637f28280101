//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"cookieshub/internal/entities"
	"cookieshub/pkg/logger"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Create(ctx context.Context, username string, passwordHash string) (*entities.User, error)
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
}

// SessionStore хранит сессии по хэшу токена, сам токен не сохраняется.
type SessionStore interface {
	Create(ctx context.Context, session entities.Session) error
	Get(ctx context.Context, tokenHash string) (*entities.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type TokenFactory interface {
	NewToken() (string, error)
	Hash(token string) string
	CalculateExpiry(baseTime time.Time) time.Time
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
