//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"cookieshub/internal/entities"

	"github.com/shopspring/decimal"
)

// Repository агрегаты считаются в SQL, timezone задаёт границы дней и месяцев.
type Repository interface {
	CountOrders(ctx context.Context) (int64, error)
	SumOrderValues(ctx context.Context) (decimal.Decimal, error)
	CountActiveProducts(ctx context.Context) (int64, error)
	SumCosts(ctx context.Context) (decimal.Decimal, error)
	GetDailySales(ctx context.Context, timezone string) ([]entities.DailySales, error)
	GetMonthlyProfit(ctx context.Context, timezone string) ([]entities.MonthlyProfit, error)
	GetMonthlyTrends(ctx context.Context, timezone string) ([]entities.MonthlyTrend, error)
	GetProductsSold(ctx context.Context) ([]entities.ProductSold, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
