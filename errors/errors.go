// Package errors classifies engine failures by the HTTP status a hosting
// service would answer with. Domain packages wrap one of the sentinels below
// with fmt.Errorf and %w, and callers match them with errors.Is.
package errors

import (
	"errors"
	"net/http"
)

var (
	BadRequest          = New(http.StatusBadRequest, "bad request")
	NotFound            = New(http.StatusNotFound, "not found")
	Duplicate           = New(http.StatusConflict, "duplicate")
	ConstraintViolation = New(http.StatusUnprocessableEntity, "constraint violation")
	InternalServerError = New(http.StatusInternalServerError, "internal server error")
)

// AppError is comparable, so errors.Is matches a sentinel by value.
type AppError struct {
	Code int
	Err  error
}

func New(code int, message string) AppError {
	return AppError{Code: code, Err: errors.New(message)}
}

func (e AppError) Error() string {
	return e.Err.Error()
}

func (e AppError) Unwrap() error {
	return e.Err
}
