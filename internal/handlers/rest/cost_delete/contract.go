//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cost_delete_test
package cost_delete

import (
	"context"

	"cookieshub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteCost(ctx context.Context, id int64) error
}
