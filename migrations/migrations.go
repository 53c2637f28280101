package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up применяет все новые миграции.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	return run(pool, func(db *sql.DB) error {
		return goose.UpContext(ctx, db, ".")
	})
}

// Down откатывает последнюю миграцию.
func Down(ctx context.Context, pool *pgxpool.Pool) error {
	return run(pool, func(db *sql.DB) error {
		return goose.DownContext(ctx, db, ".")
	})
}

func Status(ctx context.Context, pool *pgxpool.Pool) error {
	return run(pool, func(db *sql.DB) error {
		return goose.StatusContext(ctx, db, ".")
	})
}

func run(pool *pgxpool.Pool, fn func(db *sql.DB) error) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := fn(db); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	return nil
}
