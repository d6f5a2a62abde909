package option

import "shopvana-backend/internal/apperr"

var (
	ErrOptionListNotFound   = apperr.NotFound("option list not found")
	ErrOptionNotFound       = apperr.NotFound("option not found")
	ErrInvalidSelectionType = apperr.Validation("selection_type must be SINGLE or MULTIPLE")
	ErrInvalidSurcharge     = apperr.Validation("surcharge must be a decimal")
	ErrNameRequired         = apperr.Validation("name is required")
)
