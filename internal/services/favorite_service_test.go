package services

import (
	"context"
	"errors"
	"testing"

	"tasteTribeBack/internal/models"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, models.Review) {
	t.Helper()
	reviews := newMemReviewStore()
	favorites := newMemFavoriteStore()
	rev, err := reviews.CreateReview(context.Background(), models.Review{
		FoodName: "croissant", FoodImage: "https://cdn.taste.io/p/1.jpg", Rating: 5, ReviewerEmail: "bob@taste.io",
	})
	if err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return &FavoriteService{FavoritesRepo: favorites, ReviewsRepo: reviews}, rev
}

func TestAddFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots review display fields", func(t *testing.T) {
		svc, rev := newFavoriteFixture(t)
		fav, err := svc.AddFavorite(ctx, "alice@taste.io", rev.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fav.FoodName != "croissant" || fav.Rating != 5 {
			t.Fatalf("expected snapshot of review fields, got %+v", fav)
		}
	})

	t.Run("duplicate pair conflicts and leaves one record", func(t *testing.T) {
		svc, rev := newFavoriteFixture(t)
		if _, err := svc.AddFavorite(ctx, "alice@taste.io", rev.ID); err != nil {
			t.Fatalf("first add: %v", err)
		}
		if _, err := svc.AddFavorite(ctx, "alice@taste.io", rev.ID); !errors.Is(err, models.ErrAlreadyFavorite) {
			t.Fatalf("expected ErrAlreadyFavorite, got %v", err)
		}
		favs, err := svc.GetFavorites(ctx, "alice@taste.io")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(favs) != 1 {
			t.Fatalf("expected exactly one favorite, got %d", len(favs))
		}
	})

	t.Run("same review different users is fine", func(t *testing.T) {
		svc, rev := newFavoriteFixture(t)
		if _, err := svc.AddFavorite(ctx, "alice@taste.io", rev.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.AddFavorite(ctx, "carol@taste.io", rev.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing review not found", func(t *testing.T) {
		svc, _ := newFavoriteFixture(t)
		if _, err := svc.AddFavorite(ctx, "alice@taste.io", 404); !errors.Is(err, models.ErrReviewNotFound) {
			t.Fatalf("expected ErrReviewNotFound, got %v", err)
		}
	})
}

func TestDeleteFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, rev := newFavoriteFixture(t)
		fav, _ := svc.AddFavorite(ctx, "alice@taste.io", rev.ID)
		if err := svc.DeleteFavorite(ctx, "alice@taste.io", fav.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		favs, _ := svc.GetFavorites(ctx, "alice@taste.io")
		if len(favs) != 0 {
			t.Fatalf("expected no favorites left, got %d", len(favs))
		}
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		svc, rev := newFavoriteFixture(t)
		fav, _ := svc.AddFavorite(ctx, "alice@taste.io", rev.ID)
		if err := svc.DeleteFavorite(ctx, "mallory@taste.io", fav.ID); !errors.Is(err, models.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("absent id is idempotent success", func(t *testing.T) {
		svc, _ := newFavoriteFixture(t)
		if err := svc.DeleteFavorite(ctx, "alice@taste.io", 9999); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
