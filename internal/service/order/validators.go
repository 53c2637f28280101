package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

func isValidID(id int64) bool {
	return id > 0
}

func isNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isValidQuantity(quantity int) bool {
	return quantity > 0
}

func isValidValue(value decimal.Decimal) bool {
	return !value.IsNegative()
}

func isValidStatus(status string) bool {
	switch status {
	case "pendente", "concluido", "cancelado":
		return true
	default:
		return false
	}
}
