package cart

import "shopvana-backend/internal/apperr"

var (
	// -- Validation & Input --
	ErrInvalidQuantity  = apperr.Validation("quantity must be a positive integer")
	ErrInvalidOptionRef = apperr.Validation("selected_options must map to option ids")

	// -- Resource State --
	ErrCartItemNotFound = apperr.NotFound("cart item not found")
	ErrOptionNotFound   = apperr.NotFound("option not found")
	ErrReferenceGone    = apperr.NotFound("cart reference no longer exists")

	// -- Constants (External Systems) --
	pgFKViolation = "23503"
)
