package product

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStock          = errors.New("invalid stock")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrProductNotFound = errors.New("product not found")
	ErrConflict        = errors.New("product with this name already exists")
)
