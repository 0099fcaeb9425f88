package repository

import (
	"context"
	"fmt"

	"item-catalog/internal/data/entity"
	"item-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id string) (*entity.Rating, error)
	FindByItemID(ctx context.Context, itemID string) ([]*entity.Rating, error)
	Delete(ctx context.Context, id string) error
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, item_id, user_id, score, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.ItemID,
		rating.UserID,
		rating.Score,
		rating.Comment,
		rating.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("item_id", rating.ItemID),
			zap.String("user_id", rating.UserID),
		)
		return fmt.Errorf("create rating for item %s by user %s: %w",
			rating.ItemID, rating.UserID, err)
	}

	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id string) (*entity.Rating, error) {
	query := `
		SELECT id, item_id, user_id, score, comment, created_at
		FROM ratings
		WHERE id = $1
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rating.ID,
		&rating.ItemID,
		&rating.UserID,
		&rating.Score,
		&rating.Comment,
		&rating.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by ID",
			zap.Error(err),
			zap.String("rating_id", id),
		)
		return nil, fmt.Errorf("find rating by ID %s: %w", id, err)
	}

	return &rating, nil
}

func (r *ratingRepository) FindByItemID(ctx context.Context, itemID string) ([]*entity.Rating, error) {
	query := `
		SELECT id, item_id, user_id, score, comment, created_at
		FROM ratings
		WHERE item_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		r.log.Error("Failed to find ratings by item ID",
			zap.Error(err),
			zap.String("item_id", itemID),
		)
		return nil, fmt.Errorf("find ratings by item ID %s: %w", itemID, err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		var rating entity.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.ItemID,
			&rating.UserID,
			&rating.Score,
			&rating.Comment,
			&rating.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM ratings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rating",
			zap.Error(err),
			zap.String("rating_id", id),
		)
		return fmt.Errorf("delete rating %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rating %s not found", id)
	}

	r.log.Info("Rating deleted", zap.String("rating_id", id))
	return nil
}
