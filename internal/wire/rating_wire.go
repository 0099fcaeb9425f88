package wire

import (
	"net/http"

	"item-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		// Ratings are created and listed under their item
		r.Get("/items/{itemId}/ratings", ratingHandler.GetItemRatings)
		r.Post("/items/{itemId}/ratings", ratingHandler.CreateRating)

		// Deletion is top-level and owner-only
		r.Delete("/ratings/{id}", ratingHandler.DeleteRating)
	})
}
