package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"cookieshub/internal/pkg/config"
	"cookieshub/internal/pkg/dotenv"
	"cookieshub/internal/pkg/factory/session_token"
	"cookieshub/internal/pkg/postgres"
	sessionRepo "cookieshub/internal/repository/session"
	userRepo "cookieshub/internal/repository/user"
	authService "cookieshub/internal/service/auth"
	"cookieshub/migrations"
	"cookieshub/pkg/logger"
	"cookieshub/pkg/logger/zap_adapter"
	"cookieshub/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter("warn")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := newApp(zapLogger).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(log logger.Logger) *cli.App {
	credentials := []cli.Flag{
		&cli.StringFlag{
			Name:     "username",
			Aliases:  []string{"u"},
			Usage:    "login do usuário",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "senha (6..72 bytes)",
			EnvVars:  []string{"ADMIN_PASSWORD"},
			Required: true,
		},
	}

	return &cli.App{
		Name:  "cookieshub-admin",
		Usage: "migrations and user management for Cookies Hub",
		Before: func(*cli.Context) error {
			return dotenv.LoadFile()
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "database schema migrations",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: withPool(log, migrations.Up),
					},
					{
						Name:   "down",
						Usage:  "roll back the latest migration",
						Action: withPool(log, migrations.Down),
					},
					{
						Name:   "status",
						Usage:  "print migration status",
						Action: withPool(log, migrations.Status),
					},
				},
			},
			{
				Name:  "user",
				Usage: "panel users",
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "create a user with a bcrypt-hashed password",
						Flags: credentials,
						Action: withAuth(log, func(c *cli.Context, auth *authService.Auth) error {
							user, err := auth.CreateUser(c.Context, c.String("username"), c.String("password"))
							if err != nil {
								return err
							}
							fmt.Fprintf(c.App.Writer, "user %q created (id %d)\n", user.Username, user.ID)
							return nil
						}),
					},
					{
						Name:  "passwd",
						Usage: "replace the password of an existing user",
						Flags: credentials,
						Action: withAuth(log, func(c *cli.Context, auth *authService.Auth) error {
							if err := auth.ChangePassword(c.Context, c.String("username"), c.String("password")); err != nil {
								return err
							}
							fmt.Fprintf(c.App.Writer, "password of %q updated\n", c.String("username"))
							return nil
						}),
					},
				},
			},
		},
	}
}

func connect(ctx context.Context, log logger.Logger) (*pgxpool.Pool, error) {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return pool, nil
}

func withPool(log logger.Logger, fn func(ctx context.Context, pool *pgxpool.Pool) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		pool, err := connect(c.Context, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		return fn(c.Context, pool)
	}
}

// withAuth сессии админке не нужны, но сервис собирается целиком.
func withAuth(log logger.Logger, fn func(c *cli.Context, auth *authService.Auth) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		pool, err := connect(c.Context, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		q := querier.New(pool, pgxv5.DefaultCtxGetter)
		auth := authService.New(
			userRepo.New(q),
			sessionRepo.New(q),
			session_token.New(0),
			log,
			authService.Config{},
		)
		return fn(c, auth)
	}
}
