package report

import (
	"context"
	"fmt"

	"cookieshub/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	queryCountOrders         = `SELECT COUNT(*) FROM pedidos`
	querySumOrderValues      = `SELECT COALESCE(SUM(valor), 0) FROM pedidos`
	queryCountActiveProducts = `SELECT COUNT(*) FROM produtos WHERE status = 'ativo'`
	querySumCosts            = `SELECT COALESCE(SUM(valor), 0) FROM custos`

	queryDailySales = `
		SELECT to_char(criado_em AT TIME ZONE $1, 'YYYY-MM-DD') AS dia, SUM(valor)
		FROM pedidos
		GROUP BY dia
		ORDER BY dia`

	// месяц расхода берётся из его календарной даты, месяц заказа из criado_em в поясе отчётов
	queryMonthlyProfit = `
		WITH vendas AS (
			SELECT to_char(criado_em AT TIME ZONE $1, 'YYYY-MM') AS mes, SUM(valor) AS total
			FROM pedidos
			GROUP BY mes
		), gastos AS (
			SELECT to_char(data, 'YYYY-MM') AS mes, SUM(valor) AS total
			FROM custos
			GROUP BY mes
		)
		SELECT COALESCE(v.mes, g.mes) AS mes,
		       COALESCE(v.total, 0) - COALESCE(g.total, 0)
		FROM vendas v
		FULL OUTER JOIN gastos g ON g.mes = v.mes
		ORDER BY mes`

	queryMonthlyTrends = `
		SELECT to_char(criado_em AT TIME ZONE $1, 'YYYY-MM') AS mes,
		       COUNT(*), SUM(quantidade), SUM(valor)
		FROM pedidos
		GROUP BY mes
		ORDER BY mes`

	queryProductsSold = `
		SELECT COALESCE(p.nome, o.produto_nome) AS produto, SUM(o.quantidade) AS quantidade
		FROM pedidos o
		LEFT JOIN produtos p ON p.id = o.produto_id
		GROUP BY produto
		ORDER BY quantidade DESC, produto`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, queryCountOrders)
}

func (r *Repository) CountActiveProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, queryCountActiveProducts)
}

func (r *Repository) SumOrderValues(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, querySumOrderValues)
}

func (r *Repository) SumCosts(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, querySumCosts)
}

func (r *Repository) GetDailySales(ctx context.Context, timezone string) ([]entities.DailySales, error) {
	rows, err := r.querier.Query(ctx, queryDailySales, timezone)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository daily sales error: %w", err)
	}

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.DailySales, error) {
		var s entities.DailySales
		err := row.Scan(&s.Day, &s.Value)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository daily sales error: %w", err)
	}
	return sales, nil
}

func (r *Repository) GetMonthlyProfit(ctx context.Context, timezone string) ([]entities.MonthlyProfit, error) {
	rows, err := r.querier.Query(ctx, queryMonthlyProfit, timezone)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository monthly profit error: %w", err)
	}

	profit, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.MonthlyProfit, error) {
		var p entities.MonthlyProfit
		err := row.Scan(&p.Month, &p.Value)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository monthly profit error: %w", err)
	}
	return profit, nil
}

func (r *Repository) GetMonthlyTrends(ctx context.Context, timezone string) ([]entities.MonthlyTrend, error) {
	rows, err := r.querier.Query(ctx, queryMonthlyTrends, timezone)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository monthly trends error: %w", err)
	}

	trends, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.MonthlyTrend, error) {
		var t entities.MonthlyTrend
		err := row.Scan(&t.Month, &t.Orders, &t.Quantity, &t.Sales)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository monthly trends error: %w", err)
	}
	return trends, nil
}

func (r *Repository) GetProductsSold(ctx context.Context) ([]entities.ProductSold, error) {
	rows, err := r.querier.Query(ctx, queryProductsSold)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository products sold error: %w", err)
	}

	sold, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.ProductSold, error) {
		var p entities.ProductSold
		err := row.Scan(&p.Product, &p.Quantity)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository products sold error: %w", err)
	}
	return sold, nil
}

func (r *Repository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.querier.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("unexpected report repository count error: %w", err)
	}
	return n, nil
}

func (r *Repository) sum(ctx context.Context, query string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.querier.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("unexpected report repository sum error: %w", err)
	}
	return total, nil
}
