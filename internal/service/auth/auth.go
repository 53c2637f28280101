package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cookieshub/internal/entities"
	"cookieshub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	BcryptCost int
	Now        func() time.Time
}

type Auth struct {
	users    UserRepository
	sessions SessionStore
	tokens   TokenFactory
	log      handlerLogger

	bcryptCost int
	now        func() time.Time
	dummyHash  func() []byte
}

func New(
	users UserRepository,
	sessions SessionStore,
	tokens TokenFactory,
	log handlerLogger,
	cfg Config,
) *Auth {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Auth{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		log:        log.With(logger.NewField("service", "auth")),
		bcryptCost: cost,
		now:        now,
		// сравнение с фиктивным хэшем выравнивает время ответа для несуществующих пользователей
		dummyHash: sync.OnceValue(func() []byte {
			hash, _ := bcrypt.GenerateFromPassword([]byte("cookieshub-dummy"), cost)
			return hash
		}),
	}
}

// Login проверяет учётные данные и открывает сессию.
// Возвращает сырой токен для cookie и момент истечения сессии.
func (s *Auth) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if username == "" || password == "" {
		return "", time.Time{}, ErrMissingCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("login: compare password hash: %w", err)
	}

	token, err := s.tokens.NewToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("login: %w", err)
	}

	now := s.now()
	session := entities.Session{
		TokenHash: s.tokens.Hash(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: s.tokens.CalculateExpiry(now),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("login: create session: %w", err)
	}

	s.log.Info("user logged in", logger.NewField("user_id", user.ID))
	return token, session.ExpiresAt, nil
}

// Logout идемпотентен: отсутствующая сессия не ошибка.
func (s *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := s.sessions.Delete(ctx, s.tokens.Hash(token))
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Auth) Authenticate(ctx context.Context, token string) (*entities.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, s.tokens.Hash(token))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if session.Expired(s.now()) {
		return nil, ErrUnauthorized
	}
	return session, nil
}

func (s *Auth) CreateUser(ctx context.Context, username, password string) (*entities.User, error) {
	hash, err := s.hashCredentials(username, password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *Auth) ChangePassword(ctx context.Context, username, password string) error {
	hash, err := s.hashCredentials(username, password)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, username, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (s *Auth) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("cleanup expired sessions: %w", err)
	}
	return deleted, nil
}

func (s *Auth) hashCredentials(username, password string) (string, error) {
	if !isValidUsername(username) {
		return "", ErrInvalidUsername
	}
	if !isValidPassword(password) {
		return "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
