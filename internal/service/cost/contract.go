//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cost_test
package cost

import (
	"context"

	"cookieshub/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, costModifyEntity entities.CostModify) (*entities.Cost, error)
	GetByID(ctx context.Context, id int64) (*entities.Cost, error)
	GetAll(ctx context.Context) ([]entities.Cost, error)
	Update(ctx context.Context, costModifyEntity entities.CostModify) (*entities.Cost, error)
	Delete(ctx context.Context, id int64) error
}
