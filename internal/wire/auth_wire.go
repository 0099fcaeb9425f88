package wire

import (
	"net/http"

	"item-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth func(http.Handler) http.Handler,
) {
	// POST /auth/login - exchange credentials for a token (public)
	r.Post("/auth/login", authHandler.Login)

	// GET /auth/me - resolved identity (protected)
	r.With(auth).Get("/auth/me", authHandler.Me)
}
