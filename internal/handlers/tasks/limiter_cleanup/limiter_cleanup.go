package limiter_cleanup

import (
	"context"
	"time"

	"cookieshub/pkg/logger"
)

// LimiterCleanup вычищает простаивающие ключи лимитера логина.
type LimiterCleanup struct {
	log      handlerLogger
	limiter  Limiter
	interval time.Duration
}

func NewLimiterCleanup(log handlerLogger, limiter Limiter, interval time.Duration) *LimiterCleanup {
	return &LimiterCleanup{
		log:      log,
		limiter:  limiter,
		interval: interval,
	}
}

func (l *LimiterCleanup) TTL() time.Duration {
	return l.interval
}

func (l *LimiterCleanup) Do(context.Context) error {
	if removed := l.limiter.Cleanup(); removed > 0 {
		l.log.With(
			logger.NewField("idle_keys", removed),
		).Info("limiter cleanup")
	}
	return nil
}

func (l *LimiterCleanup) Info() string {
	return "limiter cleanup"
}
