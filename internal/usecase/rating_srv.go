package usecase

import (
	"context"
	"fmt"
	"time"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/data/repository"
	"item-catalog/internal/dto/request"
	"item-catalog/internal/dto/response"
	"item-catalog/pkg/utils"

	"go.uber.org/zap"
)

type RatingService interface {
	ListItemRatings(ctx context.Context, itemID string) (*response.RatingListResponse, error)
	CreateRating(ctx context.Context, itemID, userID string, req *request.RatingRequest) (*response.RatingEnvelope, error)
	DeleteRating(ctx context.Context, ratingID, userID string) error
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log,
	}
}

func (s *ratingService) ListItemRatings(ctx context.Context, itemID string) (*response.RatingListResponse, error) {
	item, err := s.repo.Item.FindByID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to find item for ratings", zap.Error(err), zap.String("item_id", itemID))
		return nil, fmt.Errorf("find item for ratings: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	ratings, err := s.repo.Rating.FindByItemID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to list ratings", zap.Error(err), zap.String("item_id", itemID))
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	return &response.RatingListResponse{Ratings: response.RatingsToResponse(ratings)}, nil
}

func (s *ratingService) CreateRating(ctx context.Context, itemID, userID string, req *request.RatingRequest) (*response.RatingEnvelope, error) {
	// Existence of the path resource comes before body validation
	item, err := s.repo.Item.FindByID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to find item for rating", zap.Error(err), zap.String("item_id", itemID))
		return nil, fmt.Errorf("find item for rating: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if errs := req.Validate(); len(errs) > 0 {
		s.log.Warn("Create rating validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Errors: errs}
	}

	rating := &entity.Rating{
		Base: entity.Base{
			ID:        utils.GenerateRatingID(),
			CreatedAt: time.Now().UTC(),
		},
		ItemID:  itemID,
		UserID:  userID,
		Score:   request.IntValue(req.Score),
		Comment: request.OptionalString(req.Comment),
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("item_id", itemID),
			zap.String("user_id", userID))
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating created",
		zap.String("rating_id", rating.ID),
		zap.String("item_id", itemID),
		zap.String("user_id", userID))

	return &response.RatingEnvelope{Rating: response.RatingToResponse(rating)}, nil
}

// DeleteRating enforces the one authorization rule in the system: only the
// authoring user may delete a rating. Existence is checked first, so a missing
// rating is a 404 even for a non-author.
func (s *ratingService) DeleteRating(ctx context.Context, ratingID, userID string) error {
	rating, err := s.repo.Rating.FindByID(ctx, ratingID)
	if err != nil {
		s.log.Error("Failed to find rating for delete", zap.Error(err), zap.String("rating_id", ratingID))
		return fmt.Errorf("find rating for delete: %w", err)
	}
	if rating == nil {
		return ErrRatingNotFound
	}

	if rating.UserID != userID {
		s.log.Warn("Rating delete denied",
			zap.String("rating_id", ratingID),
			zap.String("owner_id", rating.UserID),
			zap.String("user_id", userID))
		return ErrNotRatingOwner
	}

	if err := s.repo.Rating.Delete(ctx, ratingID); err != nil {
		s.log.Error("Failed to delete rating", zap.Error(err), zap.String("rating_id", ratingID))
		return fmt.Errorf("delete rating: %w", err)
	}

	return nil
}
