package apperr

import (
	"errors"
	"net/http"
)

// The four error categories every domain sentinel wraps. Transport code
// classifies with errors.Is and never needs to know individual sentinels.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrOperationFailed = errors.New("operation failed")
)

type categorized struct {
	category error
	msg      string
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

func NotFound(msg string) error {
	return &categorized{category: ErrNotFound, msg: msg}
}

func Validation(msg string) error {
	return &categorized{category: ErrValidation, msg: msg}
}

func Conflict(msg string) error {
	return &categorized{category: ErrConflict, msg: msg}
}

func OperationFailed(msg string) error {
	return &categorized{category: ErrOperationFailed, msg: msg}
}

// StatusCode maps an error to the HTTP status its category carries.
// Uncategorized errors are treated as operation failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
