package adaptor

import (
	"errors"
	"net/http"

	"item-catalog/internal/usecase"
	"item-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Item   *ItemHandler
	Rating *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Item:   NewItemHandler(service.Item, log),
		Rating: NewRatingHandler(service.Rating, log),
	}
}

// respondServiceError maps service failures to the wire contract. Expected
// outcomes keep their message; anything unrecognized becomes a generic 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Errors))
		utils.ResponseValidationErrors(w, validationErr.Errors)

	case errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrRatingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotRatingOwner):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
