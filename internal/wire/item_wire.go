package wire

import (
	"net/http"

	"item-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireItem(
	r chi.Router,
	itemHandler *adaptor.ItemHandler,
	auth func(http.Handler) http.Handler,
) {
	// Every item route requires identity; any authenticated user may mutate
	// any item.
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/items", itemHandler.GetItems) // GET /items?search=&category=
		r.Post("/items", itemHandler.CreateItem)
		r.Get("/items/{id}", itemHandler.GetItemByID)
		r.Put("/items/{id}", itemHandler.UpdateItem)
		r.Delete("/items/{id}", itemHandler.DeleteItem)
	})
}
