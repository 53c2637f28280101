//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_cleanup_test
package session_cleanup

import (
	"context"

	"cookieshub/pkg/logger"
)

type Service interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
