package adaptor

import (
	"encoding/json"
	"net/http"

	"item-catalog/internal/dto/request"
	"item-catalog/internal/usecase"
	"item-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// GetItemRatings handles GET /items/{itemId}/ratings
func (h *RatingHandler) GetItemRatings(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	resp, err := h.service.ListItemRatings(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, h.log, err, "list ratings")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// CreateRating handles POST /items/{itemId}/ratings
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID := chi.URLParam(r, "itemId")

	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.CreateRating(r.Context(), itemID, user.ID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create rating")
		return
	}

	utils.ResponseCreated(w, resp)
}

// DeleteRating handles DELETE /ratings/{id}
func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ratingID := chi.URLParam(r, "id")

	if err := h.service.DeleteRating(r.Context(), ratingID, user.ID); err != nil {
		respondServiceError(w, h.log, err, "delete rating")
		return
	}

	utils.ResponseNoContent(w)
}
