package cost

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}

func isValidValue(value decimal.Decimal) bool {
	return !value.IsNegative()
}

func isValidDate(date time.Time) bool {
	return !date.IsZero()
}

func isValidType(costType string) bool {
	switch costType {
	case "fixo", "variavel":
		return true
	default:
		return false
	}
}
