package entities

import "github.com/shopspring/decimal"

type Dashboard struct {
	OrdersTotal    int64
	SalesTotal     decimal.Decimal
	ProductsActive int64
	CostsTotal     decimal.Decimal
}

type DailySales struct {
	Day   string
	Value decimal.Decimal
}

type MonthlyProfit struct {
	Month string
	Value decimal.Decimal
}

type MonthlyTrend struct {
	Month    string
	Orders   int64
	Quantity int64
	Sales    decimal.Decimal
}

type ProductSold struct {
	Product  string
	Quantity int64
}
