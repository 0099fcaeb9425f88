// Package repotest provides an in-memory implementation of the repository
// interfaces for service and router tests. Behavior mirrors the SQL
// repositories: lookups return nil for misses, item search is a
// case-insensitive substring match, listings come back newest first, and the
// item delete removes its ratings with it.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/data/repository"
)

type Store struct {
	mu      sync.Mutex
	users   map[string]*entity.User
	items   map[string]*entity.Item
	ratings map[string]*entity.Rating
}

func New() *Store {
	return &Store{
		users:   make(map[string]*entity.User),
		items:   make(map[string]*entity.Item),
		ratings: make(map[string]*entity.Rating),
	}
}

// Repository exposes the store through the production repository aggregate.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:   &userRepo{s},
		Item:   &itemRepo{s},
		Rating: &ratingRepo{s},
	}
}

// AddUser seeds a user fixture.
func (s *Store) AddUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// AddItem seeds an item fixture.
func (s *Store) AddItem(item *entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

// AddRating seeds a rating fixture.
func (s *Store) AddRating(rating *entity.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[rating.ID] = rating
}

// RatingCount reports how many ratings remain, across all items.
func (s *Store) RatingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ratings)
}

// ---- users ----

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = user
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[id], nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

// ---- items ----

type itemRepo struct{ s *Store }

func (r *itemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = item
	return nil
}

func (r *itemRepo) FindByID(ctx context.Context, id string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.items[id], nil
}

func (r *itemRepo) FindAll(ctx context.Context, search, category string) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []*entity.Item
	for _, item := range r.s.items {
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if category != "" && (item.Category == nil || *item.Category != category) {
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

func matchesSearch(item *entity.Item, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(item.Name), needle) {
		return true
	}
	return item.Description != nil &&
		strings.Contains(strings.ToLower(*item.Description), needle)
}

func (r *itemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; !ok {
		return fmt.Errorf("item %s not found", item.ID)
	}
	r.s.items[item.ID] = item
	return nil
}

func (r *itemRepo) DeleteWithRatings(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return fmt.Errorf("item %s not found", id)
	}
	for ratingID, rating := range r.s.ratings {
		if rating.ItemID == id {
			delete(r.s.ratings, ratingID)
		}
	}
	delete(r.s.items, id)
	return nil
}

// ---- ratings ----

type ratingRepo struct{ s *Store }

func (r *ratingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ratings[rating.ID] = rating
	return nil
}

func (r *ratingRepo) FindByID(ctx context.Context, id string) (*entity.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.ratings[id], nil
}

func (r *ratingRepo) FindByItemID(ctx context.Context, itemID string) ([]*entity.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var ratings []*entity.Rating
	for _, rating := range r.s.ratings {
		if rating.ItemID == itemID {
			ratings = append(ratings, rating)
		}
	}

	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
	})

	return ratings, nil
}

func (r *ratingRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ratings[id]; !ok {
		return fmt.Errorf("rating %s not found", id)
	}
	delete(r.s.ratings, id)
	return nil
}
