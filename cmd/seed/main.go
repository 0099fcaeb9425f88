// Seed binary: loads the demo users and a few starter items. Users are never
// created through the API, so this is the only way accounts come to exist.
//
// Run from the repository root so the .env file is found:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"log"
	"time"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/data/repository"
	"item-catalog/pkg/database"
	"item-catalog/pkg/utils"

	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()

	users := []*entity.User{
		{
			Base:     entity.Base{ID: "user-1", CreatedAt: now},
			Email:    "demo@example.com",
			Name:     "Demo User",
			Password: "demo123",
		},
		{
			Base:     entity.Base{ID: "user-2", CreatedAt: now},
			Email:    "jane@example.com",
			Name:     "Jane Smith",
			Password: "jane123",
		},
	}

	for _, user := range users {
		existing, err := repos.User.FindByID(ctx, user.ID)
		if err != nil {
			logger.Fatal("Failed to check user", zap.Error(err), zap.String("user_id", user.ID))
		}
		if existing != nil {
			logger.Info("User already seeded", zap.String("user_id", user.ID))
			continue
		}
		if err := repos.User.Create(ctx, user); err != nil {
			logger.Fatal("Failed to seed user", zap.Error(err), zap.String("user_id", user.ID))
		}
		logger.Info("Seeded user", zap.String("user_id", user.ID), zap.String("email", user.Email))
	}

	items := []*entity.Item{
		{
			Base:        entity.Base{ID: "item-1", CreatedAt: now},
			Name:        "Mechanical Keyboard",
			Description: strPtr("Tenkeyless board with hot-swappable switches"),
			Category:    strPtr("electronics"),
			Year:        intPtr(2023),
		},
		{
			Base:        entity.Base{ID: "item-2", CreatedAt: now.Add(time.Second)},
			Name:        "Espresso Grinder",
			Description: strPtr("Single-dose conical burr grinder"),
			Category:    strPtr("kitchen"),
			Year:        intPtr(2022),
		},
	}

	for _, item := range items {
		existing, err := repos.Item.FindByID(ctx, item.ID)
		if err != nil {
			logger.Fatal("Failed to check item", zap.Error(err), zap.String("item_id", item.ID))
		}
		if existing != nil {
			logger.Info("Item already seeded", zap.String("item_id", item.ID))
			continue
		}
		if err := repos.Item.Create(ctx, item); err != nil {
			logger.Fatal("Failed to seed item", zap.Error(err), zap.String("item_id", item.ID))
		}
		logger.Info("Seeded item", zap.String("item_id", item.ID), zap.String("name", item.Name))
	}

	logger.Info("Seeding complete")
}
