//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profit_get_test
package profit_get

import (
	"context"

	"cookieshub/internal/entities"
	"cookieshub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetMonthlyProfit(ctx context.Context) ([]entities.MonthlyProfit, error)
}
