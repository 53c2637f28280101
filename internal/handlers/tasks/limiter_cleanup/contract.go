//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=limiter_cleanup_test
package limiter_cleanup

import (
	"cookieshub/pkg/logger"
)

type Limiter interface {
	Cleanup() int
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
