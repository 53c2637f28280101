package session_redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cookieshub/internal/entities"
	"cookieshub/internal/service/auth"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cookieshub:session:"

type sessionRecord struct {
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Repository хранит сессию под ключом с TTL до её истечения, поэтому чистка не нужна.
type Repository struct {
	client redis.Cmdable
	now    func() time.Time
}

func New(client redis.Cmdable) *Repository {
	return &Repository{
		client: client,
		now:    time.Now,
	}
}

func (r *Repository) Create(ctx context.Context, session entities.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(sessionRecord{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, key(session.TokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("unexpected redis session create error: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, tokenHash string) (*entities.Session, error) {
	payload, err := r.client.Get(ctx, key(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected redis session get error: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &entities.Session{
		TokenHash: tokenHash,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (r *Repository) Delete(ctx context.Context, tokenHash string) error {
	deleted, err := r.client.Del(ctx, key(tokenHash)).Result()
	if err != nil {
		return fmt.Errorf("unexpected redis session delete error: %w", err)
	}

	if deleted == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired ключи истекают сами.
func (r *Repository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func key(tokenHash string) string {
	return keyPrefix + tokenHash
}
