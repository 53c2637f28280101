package cost

import (
	"time"

	"github.com/shopspring/decimal"
)

type CostDB struct {
	ID          int64
	Description string
	Category    string
	Value       decimal.Decimal
	Date        time.Time
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CostModifyDB struct {
	ID          *int64
	Description *string
	Category    *string
	Value       *decimal.Decimal
	Date        *time.Time
	Type        *string
}
