package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductDB struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductModifyDB struct {
	ID       *int64
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
	Status   *string
}
