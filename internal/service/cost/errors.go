package cost

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCostID         = errors.New("invalid cost id")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidValue          = errors.New("invalid value")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidType           = errors.New("invalid cost type")

	ErrCostNotFound = errors.New("cost not found")
)
