package session_cleanup

import (
	"context"
	"time"

	"cookieshub/pkg/logger"
)

type SessionCleanup struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewSessionCleanup(log handlerLogger, service Service, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	removed, err := s.service.CleanupExpiredSessions(ctxWithTimeout)

	if removed > 0 {
		s.log.With(
			logger.NewField("expired_sessions", removed),
		).Info("session cleanup")
	}

	return err
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}
