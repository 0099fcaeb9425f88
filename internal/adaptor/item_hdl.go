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

type ItemHandler struct {
	service usecase.ItemService
	log     *zap.Logger
}

func NewItemHandler(service usecase.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		log:     log.With(zap.String("handler", "item")),
	}
}

// GetItems handles GET /items
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.service.ListItems(r.Context(), query.Get("search"), query.Get("category"))
	if err != nil {
		respondServiceError(w, h.log, err, "list items")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// GetItemByID handles GET /items/{id}
func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	resp, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, h.log, err, "get item")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req request.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create item")
		return
	}

	utils.ResponseCreated(w, resp)
}

// UpdateItem handles PUT /items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	var req request.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update item")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// DeleteItem handles DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		respondServiceError(w, h.log, err, "delete item")
		return
	}

	utils.ResponseNoContent(w)
}
