package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCustomer       = errors.New("invalid customer")
	ErrInvalidProduct        = errors.New("invalid product")
	ErrUnknownProduct        = errors.New("product does not exist")
	ErrInvalidQuantity       = errors.New("quantity must be greater than zero")
	ErrInvalidValue          = errors.New("invalid value")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrOrderNotFound = errors.New("order not found")
)
