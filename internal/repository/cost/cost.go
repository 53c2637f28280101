package cost

import (
	"context"
	"errors"
	"fmt"

	"cookieshub/internal/entities"
	"cookieshub/internal/service/cost"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = "id, descricao, categoria, valor, data, tipo, criado_em, atualizado_em"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, costModifyEntity entities.CostModify) (*entities.Cost, error) {
	costModifyModel := FromDomainModify(&costModifyEntity)
	query := `INSERT INTO custos (descricao, categoria, valor, data, tipo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returningColumns

	var costModel CostDB
	err := scanCost(r.querier.QueryRow(
		ctx,
		query,
		costModifyModel.Description,
		costModifyModel.Category,
		costModifyModel.Value,
		costModifyModel.Date,
		costModifyModel.Type,
	), &costModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected cost repository create error: %w", err)
	}

	return ToDomain(&costModel), nil
}

func (r *Repository) Update(ctx context.Context, costModifyEntity entities.CostModify) (*entities.Cost, error) {
	costModifyModel := FromDomainModify(&costModifyEntity)

	builder := qb.
		Update("custos")

	if costModifyModel.Description != nil {
		builder = builder.Set("descricao", costModifyModel.Description)
	}
	if costModifyModel.Category != nil {
		builder = builder.Set("categoria", costModifyModel.Category)
	}
	if costModifyModel.Value != nil {
		builder = builder.Set("valor", costModifyModel.Value)
	}
	if costModifyModel.Date != nil {
		builder = builder.Set("data", costModifyModel.Date)
	}
	if costModifyModel.Type != nil {
		builder = builder.Set("tipo", costModifyModel.Type)
	}

	builder = builder.
		Set("atualizado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id": costModifyModel.ID}).
		Suffix("RETURNING " + returningColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected cost repository update error: %w", err)
	}

	var costModel CostDB
	err = scanCost(r.querier.QueryRow(ctx, query, args...), &costModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cost.ErrCostNotFound
		}

		return nil, fmt.Errorf("unexpected cost repository update error: %w", err)
	}

	return ToDomain(&costModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Cost, error) {
	query := `SELECT ` + returningColumns + `
		FROM custos
		WHERE id = $1`

	var costModel CostDB
	err := scanCost(r.querier.QueryRow(ctx, query, id), &costModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cost.ErrCostNotFound
		}

		return nil, fmt.Errorf("unexpected cost repository getbyid error: %w", err)
	}

	return ToDomain(&costModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Cost, error) {
	query := `SELECT ` + returningColumns + `
		FROM custos
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected cost repository getall error: %w", err)
	}
	defer rows.Close()

	costModels := make([]CostDB, 0, 16)
	for rows.Next() {
		var costModel CostDB
		if err := scanCost(rows, &costModel); err != nil {
			return nil, fmt.Errorf("unexpected cost repository getall error: %w", err)
		}
		costModels = append(costModels, costModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected cost repository getall error: %w", err)
	}

	return ToDomainList(costModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM custos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected cost repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return cost.ErrCostNotFound
	}

	return nil
}

func scanCost(row pgx.Row, costModel *CostDB) error {
	return row.Scan(
		&costModel.ID,
		&costModel.Description,
		&costModel.Category,
		&costModel.Value,
		&costModel.Date,
		&costModel.Type,
		&costModel.CreatedAt,
		&costModel.UpdatedAt,
	)
}
