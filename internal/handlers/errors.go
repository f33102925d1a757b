package handlers

import (
	"errors"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/services"
)

// ErrorResponse represents a standard error response. Details carries the
// raw cause text on server faults and is omitted otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// isValidationError checks if an error is a request validation error,
// rejected before any store call was made
func isValidationError(err error) bool {
	var validationErr *services.ValidationError
	return errors.As(err, &validationErr)
}
