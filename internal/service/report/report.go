package report

import (
	"context"
	"fmt"
	"time"

	"cookieshub/internal/entities"

	"github.com/shopspring/decimal"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"

	noDataProduct = "Sem dados"
)

type Config struct {
	// Location часовой пояс, в котором считаются дни и месяцы отчётов.
	Location *time.Location
	Now      func() time.Time
}

type Report struct {
	repository Repository
	txManager  TxManager
	location   *time.Location
	now        func() time.Time
}

func New(repository Repository, txManager TxManager, cfg Config) *Report {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Report{
		repository: repository,
		txManager:  txManager,
		location:   location,
		now:        now,
	}
}

// GetDashboard читает все четыре агрегата из одного снимка базы.
func (s *Report) GetDashboard(ctx context.Context) (*entities.Dashboard, error) {
	var dashboard entities.Dashboard

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		if dashboard.OrdersTotal, err = s.repository.CountOrders(ctx); err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		if dashboard.SalesTotal, err = s.repository.SumOrderValues(ctx); err != nil {
			return fmt.Errorf("sum order values: %w", err)
		}
		if dashboard.ProductsActive, err = s.repository.CountActiveProducts(ctx); err != nil {
			return fmt.Errorf("count active products: %w", err)
		}
		if dashboard.CostsTotal, err = s.repository.SumCosts(ctx); err != nil {
			return fmt.Errorf("sum costs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}

	return &dashboard, nil
}

func (s *Report) GetDailySales(ctx context.Context) ([]entities.DailySales, error) {
	sales, err := s.repository.GetDailySales(ctx, s.location.String())
	if err != nil {
		return nil, fmt.Errorf("get daily sales: %w", err)
	}

	if len(sales) == 0 {
		return []entities.DailySales{{
			Day:   s.today(),
			Value: decimal.Zero,
		}}, nil
	}
	return sales, nil
}

// GetMonthlyProfit выручка минус расходы за каждый месяц, в котором есть заказы или расходы.
func (s *Report) GetMonthlyProfit(ctx context.Context) ([]entities.MonthlyProfit, error) {
	profit, err := s.repository.GetMonthlyProfit(ctx, s.location.String())
	if err != nil {
		return nil, fmt.Errorf("get monthly profit: %w", err)
	}

	if len(profit) == 0 {
		return []entities.MonthlyProfit{{
			Month: s.currentMonth(),
			Value: decimal.Zero,
		}}, nil
	}
	return profit, nil
}

func (s *Report) GetMonthlyTrends(ctx context.Context) ([]entities.MonthlyTrend, error) {
	trends, err := s.repository.GetMonthlyTrends(ctx, s.location.String())
	if err != nil {
		return nil, fmt.Errorf("get monthly trends: %w", err)
	}

	if len(trends) == 0 {
		return []entities.MonthlyTrend{{
			Month: s.currentMonth(),
			Sales: decimal.Zero,
		}}, nil
	}
	return trends, nil
}

func (s *Report) GetProductsSold(ctx context.Context) ([]entities.ProductSold, error) {
	sold, err := s.repository.GetProductsSold(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products sold: %w", err)
	}

	if len(sold) == 0 {
		return []entities.ProductSold{{
			Product: noDataProduct,
		}}, nil
	}
	return sold, nil
}

func (s *Report) today() string {
	return s.now().In(s.location).Format(dayLayout)
}

func (s *Report) currentMonth() string {
	return s.now().In(s.location).Format(monthLayout)
}
