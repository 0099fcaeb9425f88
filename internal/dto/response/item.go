package response

import (
	"time"

	"item-catalog/internal/data/entity"
)

type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Year        *int      `json:"year,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ItemEnvelope struct {
	Item ItemResponse `json:"item"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

type ItemDetailResponse struct {
	Item    ItemResponse     `json:"item"`
	Ratings []RatingResponse `json:"ratings"`
}

func ItemToResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		Year:        item.Year,
		CreatedAt:   item.CreatedAt,
	}
}

func ItemsToResponse(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemToResponse(item))
	}
	return out
}
