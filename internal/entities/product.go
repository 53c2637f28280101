package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Status    ProductStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductStatusType string

const (
	ProductActive   ProductStatusType = "ativo"
	ProductInactive ProductStatusType = "inativo"
)

func (t ProductStatusType) String() string {
	return string(t)
}

type ProductModify struct {
	ID       *int64
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
	Status   *ProductStatusType
}

type ProductFilter struct {
	Name *string
}
