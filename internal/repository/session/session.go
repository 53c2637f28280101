package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cookieshub/internal/entities"
	"cookieshub/internal/service/auth"

	"github.com/jackc/pgx/v5"
)

// Repository хранилище сессий в PostgreSQL, используется когда Redis не настроен.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, session entities.Session) error {
	_, err := r.querier.Exec(ctx,
		`INSERT INTO sessoes (token_hash, usuario_id, criado_em, expira_em) VALUES ($1, $2, $3, $4)`,
		session.TokenHash,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected session repository create error: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, tokenHash string) (*entities.Session, error) {
	query := `SELECT token_hash, usuario_id, criado_em, expira_em
		FROM sessoes
		WHERE token_hash = $1`

	var session entities.Session
	err := r.querier.QueryRow(ctx, query, tokenHash).
		Scan(
			&session.TokenHash,
			&session.UserID,
			&session.CreatedAt,
			&session.ExpiresAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository get error: %w", err)
	}

	return &session, nil
}

func (r *Repository) Delete(ctx context.Context, tokenHash string) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM sessoes WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.querier.Exec(ctx, `DELETE FROM sessoes WHERE expira_em <= $1`, before)
	if err != nil {
		return 0, fmt.Errorf("unexpected session repository delete expired error: %w", err)
	}
	return result.RowsAffected(), nil
}
