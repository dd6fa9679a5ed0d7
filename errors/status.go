package errors

import (
	"errors"
	"net/http"
)

// StatusCode returns the code of the first AppError in the chain of err.
// Errors outside of the taxonomy map to internal server error.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	e := AppError{}
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalServerError.Code
}

// IsValidation reports whether err was caused by invalid input rather than
// a failure of the engine itself.
func IsValidation(err error) bool {
	switch StatusCode(err) {
	case BadRequest.Code, ConstraintViolation.Code, Duplicate.Code:
		return true
	default:
		return false
	}
}
