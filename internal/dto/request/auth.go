package request

import (
	"item-catalog/pkg/validation"
)

// Request fields are decoded as loose JSON values so validation can report a
// wrong type the same way as a missing value.

type LoginRequest struct {
	Email    any `json:"email"`
	Password any `json:"password"`
}

func (r *LoginRequest) Validate() []validation.FieldError {
	return validation.Collect(
		validation.Email(r.Email, "email"),
		validation.String(r.Password, "password", validation.StringOptions{}),
	)
}
