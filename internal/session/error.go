package session

import "shopvana-backend/internal/apperr"

var (
	ErrTokenNotFound = apperr.NotFound("temporary user not found")
)
