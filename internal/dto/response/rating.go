package response

import (
	"time"

	"item-catalog/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingEnvelope struct {
	Rating RatingResponse `json:"rating"`
}

type RatingListResponse struct {
	Ratings []RatingResponse `json:"ratings"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		ItemID:    rating.ItemID,
		UserID:    rating.UserID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
}

func RatingsToResponse(ratings []*entity.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, RatingToResponse(rating))
	}
	return out
}
