package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductNameExists = errors.New("product with this name already exists")
	ErrInvalidCategory   = errors.New("category is not in the recognized category set")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)
