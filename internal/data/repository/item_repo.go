package repository

import (
	"context"
	"fmt"
	"strings"

	"item-catalog/internal/data/entity"
	"item-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, id string) (*entity.Item, error)
	FindAll(ctx context.Context, search, category string) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	DeleteWithRatings(ctx context.Context, id string) error
}

type itemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItemRepository(db database.PgxIface, log *zap.Logger) ItemRepository {
	return &itemRepository{
		db:  db,
		log: log.With(zap.String("repository", "item")),
	}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, image_url, category, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.ImageURL,
		item.Category,
		item.Year,
		item.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create item",
			zap.Error(err),
			zap.String("item_id", item.ID),
		)
		return fmt.Errorf("create item %s: %w", item.ID, err)
	}

	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `
		SELECT id, name, description, image_url, category, year, created_at
		FROM items
		WHERE id = $1
	`

	var item entity.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.ImageURL,
		&item.Category,
		&item.Year,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find item by ID",
			zap.Error(err),
			zap.String("item_id", id),
		)
		return nil, fmt.Errorf("find item by ID %s: %w", id, err)
	}

	return &item, nil
}

// FindAll lists items newest first. search matches name or description as a
// case-insensitive substring; category is an exact match.
func (r *itemRepository) FindAll(ctx context.Context, search, category string) ([]*entity.Item, error) {
	// Build query with optional filters
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, description, image_url, category, year, created_at
		FROM items
		WHERE 1=1
	`)

	args := []interface{}{}
	argCount := 1

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	if category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argCount))
		args = append(args, category)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find items",
			zap.Error(err),
			zap.String("search", search),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var item entity.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.ImageURL,
			&item.Category,
			&item.Year,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan item row", zap.Error(err))
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

// Update replaces every mutable field of an item.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, description = $3, image_url = $4, category = $5, year = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.ImageURL,
		item.Category,
		item.Year,
	)

	if err != nil {
		r.log.Error("Failed to update item",
			zap.Error(err),
			zap.String("item_id", item.ID),
		)
		return fmt.Errorf("update item %s: %w", item.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("item %s not found", item.ID)
	}

	return nil
}

// DeleteWithRatings removes an item and every rating referencing it in one
// transaction. Ratings go first so no rating ever references a missing item.
func (r *itemRepository) DeleteWithRatings(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction",
			zap.Error(err),
			zap.String("item_id", id),
		)
		return fmt.Errorf("begin delete item %s: %w", id, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM ratings WHERE item_id = $1`, id); err != nil {
		r.log.Error("Failed to delete item ratings",
			zap.Error(err),
			zap.String("item_id", id),
		)
		return fmt.Errorf("delete ratings for item %s: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete item",
			zap.Error(err),
			zap.String("item_id", id),
		)
		return fmt.Errorf("delete item %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("item %s not found", id)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit item delete",
			zap.Error(err),
			zap.String("item_id", id),
		)
		return fmt.Errorf("commit delete item %s: %w", id, err)
	}

	r.log.Info("Item deleted", zap.String("item_id", id))
	return nil
}
