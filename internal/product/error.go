package product

import "shopvana-backend/internal/apperr"

var (
	ErrProductNotFound = apperr.NotFound("product not found")
	ErrNameRequired    = apperr.Validation("product name is required")
	ErrInvalidPrice    = apperr.Validation("price must be a non-negative decimal")
	ErrImageRequired   = apperr.Validation("product image is required")
)
