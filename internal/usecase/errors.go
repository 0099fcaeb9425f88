package usecase

import (
	"errors"
	"fmt"

	"item-catalog/pkg/validation"
)

// Expected, user-facing failures. Handlers map these to status codes; anything
// else is treated as an internal error and surfaces as a generic 500.
var (
	// Authentication (401). The three resolver failures share a status but
	// keep distinct messages.
	ErrMissingAuth        = errors.New("Missing or malformed authorization header")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// Not found (404)
	ErrItemNotFound   = errors.New("Item not found")
	ErrRatingNotFound = errors.New("Rating not found")

	// Authorization (403)
	ErrNotRatingOwner = errors.New("You can only delete your own ratings")
)

// ValidationError carries the ordered list of field failures for a 400
// response. All violations are reported together, not just the first.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Errors))
}
