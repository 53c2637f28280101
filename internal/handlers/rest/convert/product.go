package convert

import (
	"cookieshub/internal/entities"
	"cookieshub/internal/generated/dto"
)

func ProductToDTO(product *entities.Product) dto.Product {
	return dto.Product{
		Id:        product.ID,
		Nome:      product.Name,
		Categoria: product.Category,
		Preco:     product.Price.InexactFloat64(),
		Estoque:   product.Stock,
		Status:    dto.ProductStatus(product.Status),
	}
}

func ProductsToDTO(products []entities.Product) []dto.Product {
	result := make([]dto.Product, len(products))
	for i := range products {
		result[i] = ProductToDTO(&products[i])
	}
	return result
}

func ProductFromDTO(body dto.ProductWrite) entities.ProductModify {
	productModify := entities.ProductModify{
		Name:     body.Nome,
		Category: body.Categoria,
		Price:    money(body.Preco),
		Stock:    body.Estoque,
	}
	if body.Status != nil {
		status := entities.ProductStatusType(*body.Status)
		productModify.Status = &status
	}
	return productModify
}
