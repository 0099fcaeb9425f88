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

type ItemService interface {
	ListItems(ctx context.Context, search, category string) (*response.ItemListResponse, error)
	GetItem(ctx context.Context, id string) (*response.ItemDetailResponse, error)
	CreateItem(ctx context.Context, req *request.ItemRequest) (*response.ItemEnvelope, error)
	UpdateItem(ctx context.Context, id string, req *request.ItemRequest) (*response.ItemEnvelope, error)
	DeleteItem(ctx context.Context, id string) error
}

type itemService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewItemService(repo *repository.Repository, log *zap.Logger) ItemService {
	return &itemService{
		repo: repo,
		log:  log,
	}
}

func (s *itemService) ListItems(ctx context.Context, search, category string) (*response.ItemListResponse, error) {
	items, err := s.repo.Item.FindAll(ctx, search, category)
	if err != nil {
		s.log.Error("Failed to list items", zap.Error(err))
		return nil, fmt.Errorf("list items: %w", err)
	}

	return &response.ItemListResponse{Items: response.ItemsToResponse(items)}, nil
}

func (s *itemService) GetItem(ctx context.Context, id string) (*response.ItemDetailResponse, error) {
	item, err := s.repo.Item.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get item", zap.Error(err), zap.String("item_id", id))
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	ratings, err := s.repo.Rating.FindByItemID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get item ratings", zap.Error(err), zap.String("item_id", id))
		return nil, fmt.Errorf("get item ratings: %w", err)
	}

	return &response.ItemDetailResponse{
		Item:    response.ItemToResponse(item),
		Ratings: response.RatingsToResponse(ratings),
	}, nil
}

func (s *itemService) CreateItem(ctx context.Context, req *request.ItemRequest) (*response.ItemEnvelope, error) {
	// Validation fully precedes persistence
	if errs := req.Validate(); len(errs) > 0 {
		s.log.Warn("Create item validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Errors: errs}
	}

	item := &entity.Item{
		Base: entity.Base{
			ID:        utils.GenerateItemID(),
			CreatedAt: time.Now().UTC(),
		},
		Name:        request.StringValue(req.Name),
		Description: request.OptionalString(req.Description),
		ImageURL:    request.OptionalString(req.ImageURL),
		Category:    request.OptionalString(req.Category),
		Year:        request.OptionalInt(req.Year),
	}

	if err := s.repo.Item.Create(ctx, item); err != nil {
		s.log.Error("Failed to create item", zap.Error(err), zap.String("item_id", item.ID))
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.Info("Item created", zap.String("item_id", item.ID), zap.String("name", item.Name))

	return &response.ItemEnvelope{Item: response.ItemToResponse(item)}, nil
}

// UpdateItem replaces every mutable field; optional fields absent from the
// request become NULL.
func (s *itemService) UpdateItem(ctx context.Context, id string, req *request.ItemRequest) (*response.ItemEnvelope, error) {
	existing, err := s.repo.Item.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find item for update", zap.Error(err), zap.String("item_id", id))
		return nil, fmt.Errorf("find item for update: %w", err)
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}

	// Same rules as create
	if errs := req.Validate(); len(errs) > 0 {
		s.log.Warn("Update item validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Errors: errs}
	}

	existing.Name = request.StringValue(req.Name)
	existing.Description = request.OptionalString(req.Description)
	existing.ImageURL = request.OptionalString(req.ImageURL)
	existing.Category = request.OptionalString(req.Category)
	existing.Year = request.OptionalInt(req.Year)

	if err := s.repo.Item.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update item", zap.Error(err), zap.String("item_id", id))
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.Info("Item updated", zap.String("item_id", id))

	return &response.ItemEnvelope{Item: response.ItemToResponse(existing)}, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	existing, err := s.repo.Item.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find item for delete", zap.Error(err), zap.String("item_id", id))
		return fmt.Errorf("find item for delete: %w", err)
	}
	if existing == nil {
		return ErrItemNotFound
	}

	// Ratings go with the item, atomically
	if err := s.repo.Item.DeleteWithRatings(ctx, id); err != nil {
		s.log.Error("Failed to delete item", zap.Error(err), zap.String("item_id", id))
		return fmt.Errorf("delete item: %w", err)
	}

	return nil
}
