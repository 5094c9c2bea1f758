package services

import (
	"context"
	"errors"

	"tasteTribeBack/internal/guard"
	"tasteTribeBack/internal/models"
)

type FavoriteStore interface {
	AddToFavorites(ctx context.Context, fav models.FavoriteReview) (models.FavoriteReview, error)
	GetFavoritesByUser(ctx context.Context, email string) ([]models.FavoriteReview, error)
	GetFavoriteByID(ctx context.Context, id int) (models.FavoriteReview, error)
	DeleteFavorite(ctx context.Context, id int) (bool, error)
	DeleteByReviewID(ctx context.Context, reviewID int) (int64, error)
}

type FavoriteService struct {
	FavoritesRepo FavoriteStore
	ReviewsRepo   ReviewStore
}

// AddFavorite snapshots the review's display fields at favoriting time so
// listings stay renderable after a cascade orphans the reference.
func (s *FavoriteService) AddFavorite(ctx context.Context, email string, reviewID int) (models.FavoriteReview, error) {
	rev, err := s.ReviewsRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return models.FavoriteReview{}, err
	}
	fav := models.FavoriteReview{
		UserEmail: email,
		ReviewID:  rev.ID,
		FoodName:  rev.FoodName,
		FoodImage: rev.FoodImage,
		Rating:    rev.Rating,
	}
	return s.FavoritesRepo.AddToFavorites(ctx, fav)
}

func (s *FavoriteService) GetFavorites(ctx context.Context, email string) ([]models.FavoriteReview, error) {
	return s.FavoritesRepo.GetFavoritesByUser(ctx, email)
}

// DeleteFavorite is owner-only. Deleting an id that no longer exists is
// an idempotent success.
func (s *FavoriteService) DeleteFavorite(ctx context.Context, email string, id int) error {
	fav, err := s.FavoritesRepo.GetFavoriteByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrFavoriteNotFound) {
			return nil
		}
		return err
	}
	if err := guard.Owns(email, fav.UserEmail); err != nil {
		return err
	}
	_, err = s.FavoritesRepo.DeleteFavorite(ctx, id)
	return err
}
