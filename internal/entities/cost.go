package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout формат календарной даты расхода.
const DateLayout = "2006-01-02"

type Cost struct {
	ID          int64
	Description string
	Category    string
	Value       decimal.Decimal
	Date        time.Time
	Type        CostType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CostType string

const (
	CostFixed    CostType = "fixo"
	CostVariable CostType = "variavel"
)

func (t CostType) String() string {
	return string(t)
}

type CostModify struct {
	ID          *int64
	Description *string
	Category    *string
	Value       *decimal.Decimal
	Date        *time.Time
	Type        *CostType
}
