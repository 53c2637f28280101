package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID          int64
	Customer    string
	ProductID   *int64
	ProductName string
	Quantity    int
	Value       decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderModifyDB struct {
	ID          *int64
	Customer    *string
	ProductID   *int64
	ProductName *string
	Quantity    *int
	Value       *decimal.Decimal
	Status      *string
}
