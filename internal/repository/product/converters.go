package product

import (
	"cookieshub/internal/entities"
)

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Status:    entities.ProductStatusType(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDomainModify(productModify *entities.ProductModify) *ProductModifyDB {
	if productModify == nil {
		return nil
	}

	productDB := &ProductModifyDB{
		ID:       productModify.ID,
		Name:     productModify.Name,
		Category: productModify.Category,
		Price:    productModify.Price,
		Stock:    productModify.Stock,
	}
	if productModify.Status != nil {
		status := productModify.Status.String()
		productDB.Status = &status
	}

	return productDB
}

func ToDomainList(productsDB []ProductDB) []entities.Product {
	if len(productsDB) == 0 {
		return []entities.Product{}
	}

	result := make([]entities.Product, len(productsDB))
	for i, productDB := range productsDB {
		result[i] = *ToDomain(&productDB)
	}
	return result
}
