package middleware

import (
	"context"
	"errors"
	"net/http"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/usecase"
	"item-catalog/pkg/utils"

	"go.uber.org/zap"
)

// IdentityResolver maps a raw Authorization header value to a user identity.
// Implemented by the auth service; the token encoding stays behind it.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, authorizationHeader string) (*entity.User, error)
}

// Auth middleware resolves the bearer token and stores the identity in the
// request context. Any resolution failure short-circuits with 401 before the
// handler runs.
func Auth(resolver IdentityResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.ResolveToken(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				switch {
				case errors.Is(err, usecase.ErrMissingAuth),
					errors.Is(err, usecase.ErrInvalidToken),
					errors.Is(err, usecase.ErrUserNotFound):
					logger.Warn("Unauthorized request",
						zap.String("path", r.URL.Path),
						zap.Error(err))
					utils.ResponseUnauthorized(w, err.Error())
				default:
					logger.Error("Failed to resolve token",
						zap.String("path", r.URL.Path),
						zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
				}
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
