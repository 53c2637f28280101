package user

import (
	"context"
	"errors"
	"fmt"

	"cookieshub/internal/entities"
	"cookieshub/internal/repository"
	"cookieshub/internal/service/auth"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `SELECT id, username, senha_hash, criado_em
		FROM usuarios
		WHERE username = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, username).
		Scan(
			&userModel.ID,
			&userModel.Username,
			&userModel.PasswordHash,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyusername error: %w", err)
	}

	return toDomain(&userModel), nil
}

func (r *Repository) Create(ctx context.Context, username string, passwordHash string) (*entities.User, error) {
	query := `INSERT INTO usuarios (username, senha_hash)
		VALUES ($1, $2)
		RETURNING id, username, senha_hash, criado_em`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, username, passwordHash).
		Scan(
			&userModel.ID,
			&userModel.Username,
			&userModel.PasswordHash,
			&userModel.CreatedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrUserExists
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return toDomain(&userModel), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	result, err := r.querier.Exec(ctx,
		`UPDATE usuarios SET senha_hash = $2 WHERE username = $1`,
		username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("unexpected user repository update password error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func toDomain(u *UserDB) *entities.User {
	return &entities.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
