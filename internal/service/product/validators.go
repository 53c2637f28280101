package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPrice(price decimal.Decimal) bool {
	return !price.IsNegative()
}

func isValidStock(stock int) bool {
	return stock >= 0
}

func isValidStatus(status string) bool {
	switch status {
	case "ativo", "inativo":
		return true
	default:
		return false
	}
}
