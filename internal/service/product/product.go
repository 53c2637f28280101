package product

import (
	"context"
	"fmt"
	"strings"

	"cookieshub/internal/entities"
)

type Product struct {
	repository Repository
}

func New(repository Repository) *Product {
	return &Product{
		repository: repository,
	}
}

func (s *Product) CreateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if productModify.Name == nil || productModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}
	if productModify.Stock == nil {
		productModify.Stock = new(int)
	}
	if productModify.Category == nil {
		productModify.Category = new(string)
	}
	if productModify.Status == nil {
		status := entities.ProductActive
		productModify.Status = &status
	}

	if err := validate(productModify); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(*productModify.Name)
	productModify.Name = &name

	product, err := s.repository.Create(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

// UpdateProduct полная замена изменяемых полей товара.
func (s *Product) UpdateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if productModify.ID == nil ||
		productModify.Name == nil ||
		productModify.Category == nil ||
		productModify.Price == nil ||
		productModify.Stock == nil ||
		productModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*productModify.ID) {
		return nil, ErrInvalidProductID
	}

	if err := validate(productModify); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(*productModify.Name)
	productModify.Name = &name

	product, err := s.repository.Update(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *Product) GetProduct(ctx context.Context, id int64) (*entities.Product, error) {
	if !isValidID(id) {
		return nil, ErrInvalidProductID
	}

	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (s *Product) GetProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	products, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return products, nil
}

func (s *Product) DeleteProduct(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidProductID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func validate(productModify entities.ProductModify) error {
	if !isValidName(*productModify.Name) {
		return ErrInvalidName
	}
	if !isValidPrice(*productModify.Price) {
		return ErrInvalidPrice
	}
	if !isValidStock(*productModify.Stock) {
		return ErrInvalidStock
	}
	if !isValidStatus(productModify.Status.String()) {
		return ErrInvalidStatus
	}
	return nil
}
