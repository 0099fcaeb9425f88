package usecase

import (
	"context"
	"testing"
	"time"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/data/repository/repotest"
	"item-catalog/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRatingService(t *testing.T) (RatingService, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	store.AddItem(&entity.Item{
		Base: entity.Base{ID: "item-1", CreatedAt: time.Now().UTC()},
		Name: "Keyboard",
	})
	return NewRatingService(store.Repository(), zap.NewNop()), store
}

func TestCreateRating(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		svc, _ := newRatingService(t)
		resp, err := svc.CreateRating(ctx, "item-1", "user-1", &request.RatingRequest{
			Score:   float64(4),
			Comment: "solid",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Rating.ID)
		assert.Equal(t, "item-1", resp.Rating.ItemID)
		assert.Equal(t, "user-1", resp.Rating.UserID)
		assert.Equal(t, 4, resp.Rating.Score)
		require.NotNil(t, resp.Rating.Comment)
		assert.Equal(t, "solid", *resp.Rating.Comment)
	})

	t.Run("every score in range succeeds", func(t *testing.T) {
		svc, _ := newRatingService(t)
		for score := 1; score <= 5; score++ {
			_, err := svc.CreateRating(ctx, "item-1", "user-1", &request.RatingRequest{
				Score: float64(score),
			})
			require.NoError(t, err, "score %d", score)
		}
	})

	t.Run("scores outside range fail on the score field", func(t *testing.T) {
		svc, _ := newRatingService(t)
		for _, score := range []float64{0, 6, -3, 100} {
			_, err := svc.CreateRating(ctx, "item-1", "user-1", &request.RatingRequest{
				Score: score,
			})
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr, "score %v", score)
			assert.Equal(t, "score", validationErr.Errors[0].Field)
		}
	})

	t.Run("missing score", func(t *testing.T) {
		svc, _ := newRatingService(t)
		_, err := svc.CreateRating(ctx, "item-1", "user-1", &request.RatingRequest{})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "score is required", validationErr.Errors[0].Message)
	})

	t.Run("missing item wins over invalid body", func(t *testing.T) {
		svc, _ := newRatingService(t)
		_, err := svc.CreateRating(ctx, "item-999", "user-1", &request.RatingRequest{
			Score: float64(99),
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestListItemRatings(t *testing.T) {
	ctx := context.Background()
	svc, store := newRatingService(t)

	now := time.Now().UTC()
	store.AddRating(&entity.Rating{Base: entity.Base{ID: "rating-1", CreatedAt: now}, ItemID: "item-1", UserID: "user-1", Score: 3})
	store.AddRating(&entity.Rating{Base: entity.Base{ID: "rating-2", CreatedAt: now.Add(time.Second)}, ItemID: "item-1", UserID: "user-2", Score: 5})

	t.Run("newest first", func(t *testing.T) {
		resp, err := svc.ListItemRatings(ctx, "item-1")
		require.NoError(t, err)
		require.Len(t, resp.Ratings, 2)
		assert.Equal(t, "rating-2", resp.Ratings[0].ID)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := svc.ListItemRatings(ctx, "item-999")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestDeleteRating(t *testing.T) {
	ctx := context.Background()
	svc, store := newRatingService(t)

	store.AddRating(&entity.Rating{
		Base:   entity.Base{ID: "rating-1", CreatedAt: time.Now().UTC()},
		ItemID: "item-1",
		UserID: "user-1",
		Score:  5,
	})

	t.Run("missing rating is 404 even for a non-author", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteRating(ctx, "rating-999", "user-2"), ErrRatingNotFound)
	})

	t.Run("non-author is forbidden and the rating survives", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteRating(ctx, "rating-1", "user-2"), ErrNotRatingOwner)
		assert.Equal(t, 1, store.RatingCount())
	})

	t.Run("author may delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteRating(ctx, "rating-1", "user-1"))
		assert.Equal(t, 0, store.RatingCount())
	})

	t.Run("repeat delete is a miss", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteRating(ctx, "rating-1", "user-1"), ErrRatingNotFound)
	})
}
