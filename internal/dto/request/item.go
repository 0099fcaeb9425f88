package request

import (
	"item-catalog/pkg/validation"
)

// ItemRequest is the body for both item create and full-replace update.
type ItemRequest struct {
	Name        any `json:"name"`
	Description any `json:"description"`
	ImageURL    any `json:"imageUrl"`
	Category    any `json:"category"`
	Year        any `json:"year"`
}

func (r *ItemRequest) Validate() []validation.FieldError {
	return validation.Collect(
		validation.String(r.Name, "name", validation.StringOptions{MinLength: 2, MaxLength: 200}),
		validation.String(r.Description, "description", validation.StringOptions{Optional: true, MaxLength: 2000}),
		validation.String(r.ImageURL, "imageUrl", validation.StringOptions{Optional: true}),
		validation.String(r.Category, "category", validation.StringOptions{Optional: true, MaxLength: 100}),
		validation.Number(r.Year, "year", validation.NumberOptions{
			Optional: true,
			Min:      validation.Bound(1900),
			Max:      validation.Bound(2100),
		}),
	)
}
