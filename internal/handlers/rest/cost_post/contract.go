//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cost_post_test
package cost_post

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
	CreateCost(ctx context.Context, costModify entities.CostModify) (*entities.Cost, error)
}
