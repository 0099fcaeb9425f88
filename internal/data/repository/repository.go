package repository

import (
	"item-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Item   ItemRepository
	Rating RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Item:   NewItemRepository(db, log),
		Rating: NewRatingRepository(db, log),
	}
}
