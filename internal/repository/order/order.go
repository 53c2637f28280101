package order

import (
	"context"
	"errors"
	"fmt"

	"cookieshub/internal/entities"
	"cookieshub/internal/repository"
	"cookieshub/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// при записи produto_nome только что снят с каталога, поэтому RETURNING отдаёт его без join
const returningColumns = "id, cliente, produto_id, produto_nome, quantidade, valor, status, criado_em, atualizado_em"

const selectOrders = `
	SELECT o.id, o.cliente, o.produto_id, COALESCE(p.nome, o.produto_nome),
	       o.quantidade, o.valor, o.status, o.criado_em, o.atualizado_em
	FROM pedidos o
	LEFT JOIN produtos p ON p.id = o.produto_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO pedidos (cliente, produto_id, produto_nome, quantidade, valor, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + returningColumns

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.Customer,
		orderModifyModel.ProductID,
		orderModifyModel.ProductName,
		orderModifyModel.Quantity,
		orderModifyModel.Value,
		orderModifyModel.Status,
	), &orderModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrUnknownProduct
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("pedidos")

	if orderModifyModel.Customer != nil {
		builder = builder.Set("cliente", orderModifyModel.Customer)
	}
	if orderModifyModel.ProductName != nil {
		builder = builder.
			Set("produto_id", orderModifyModel.ProductID).
			Set("produto_nome", orderModifyModel.ProductName)
	}
	if orderModifyModel.Quantity != nil {
		builder = builder.Set("quantidade", orderModifyModel.Quantity)
	}
	if orderModifyModel.Value != nil {
		builder = builder.Set("valor", orderModifyModel.Value)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}

	builder = builder.
		Set("atualizado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + returningColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrUnknownProduct
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := selectOrders + `
		WHERE o.id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := selectOrders + `
		ORDER BY o.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 32)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.Customer,
		&orderModel.ProductID,
		&orderModel.ProductName,
		&orderModel.Quantity,
		&orderModel.Value,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}
