package usecase

import (
	"item-catalog/internal/data/repository"
	"item-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Item   ItemService
	Rating RatingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Item:   NewItemService(repo, log),
		Rating: NewRatingService(repo, log),
	}
}
