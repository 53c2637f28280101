package product

import (
	"context"
	"errors"
	"fmt"

	"cookieshub/internal/entities"
	"cookieshub/internal/repository"
	"cookieshub/internal/service/product"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = "id, nome, categoria, preco, estoque, status, criado_em, atualizado_em"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, productModifyEntity entities.ProductModify) (*entities.Product, error) {
	productModifyModel := FromDomainModify(&productModifyEntity)
	query := `INSERT INTO produtos (nome, categoria, preco, estoque, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returningColumns

	var productModel ProductDB
	err := scanProduct(r.querier.QueryRow(
		ctx,
		query,
		productModifyModel.Name,
		productModifyModel.Category,
		productModifyModel.Price,
		productModifyModel.Stock,
		productModifyModel.Status,
	), &productModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, product.ErrConflict
		}
		return nil, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) Update(ctx context.Context, productModifyEntity entities.ProductModify) (*entities.Product, error) {
	productModifyModel := FromDomainModify(&productModifyEntity)

	builder := qb.
		Update("produtos")

	if productModifyModel.Name != nil {
		builder = builder.Set("nome", productModifyModel.Name)
	}
	if productModifyModel.Category != nil {
		builder = builder.Set("categoria", productModifyModel.Category)
	}
	if productModifyModel.Price != nil {
		builder = builder.Set("preco", productModifyModel.Price)
	}
	if productModifyModel.Stock != nil {
		builder = builder.Set("estoque", productModifyModel.Stock)
	}
	if productModifyModel.Status != nil {
		builder = builder.Set("status", productModifyModel.Status)
	}

	builder = builder.
		Set("atualizado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productModifyModel.ID}).
		Suffix("RETURNING " + returningColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	var productModel ProductDB
	err = scanProduct(r.querier.QueryRow(ctx, query, args...), &productModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, product.ErrConflict
		}

		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT ` + returningColumns + `
		FROM produtos
		WHERE id = $1`

	var productModel ProductDB
	err := scanProduct(r.querier.QueryRow(ctx, query, id), &productModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(&productModel), nil
}

// GetByName точное совпадение имени, используется при записи заказов.
func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Product, error) {
	query := `SELECT ` + returningColumns + `
		FROM produtos
		WHERE nome = $1`

	var productModel ProductDB
	err := scanProduct(r.querier.QueryRow(ctx, query, name), &productModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected product repository getbyname error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	builder := qb.
		Select(returningColumns).
		From("produtos").
		OrderBy("id")

	if filter.Name != nil {
		builder = builder.Where(sq.Eq{"nome": *filter.Name})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 16)
	for rows.Next() {
		var productModel ProductDB
		if err := scanProduct(rows, &productModel); err != nil {
			return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
		}
		productModels = append(productModels, productModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	return ToDomainList(productModels), nil
}

// Delete заказы на удалённый товар сохраняют снимок имени, produto_id обнуляется.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected product repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func scanProduct(row pgx.Row, productModel *ProductDB) error {
	return row.Scan(
		&productModel.ID,
		&productModel.Name,
		&productModel.Category,
		&productModel.Price,
		&productModel.Stock,
		&productModel.Status,
		&productModel.CreatedAt,
		&productModel.UpdatedAt,
	)
}
