package request

import (
	"item-catalog/pkg/validation"
)

type RatingRequest struct {
	Score   any `json:"score"`
	Comment any `json:"comment"`
}

func (r *RatingRequest) Validate() []validation.FieldError {
	return validation.Collect(
		validation.Number(r.Score, "score", validation.NumberOptions{
			Min: validation.Bound(1),
			Max: validation.Bound(5),
		}),
		validation.String(r.Comment, "comment", validation.StringOptions{Optional: true}),
	)
}
