package services

import (
	"context"
	"errors"
	"strings"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/guard"
	"tasteTribeBack/internal/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 9
	maxPageSize     = 50
	featuredCount   = 6
	recentCount     = 3
)

type ReviewStore interface {
	CreateReview(ctx context.Context, rev models.Review) (models.Review, error)
	GetReviewByID(ctx context.Context, id int) (models.Review, error)
	GetReviewsWithFilters(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error)
	GetFeaturedReviews(ctx context.Context, limit int) ([]models.Review, error)
	GetReviewsByEmail(ctx context.Context, email string) ([]models.Review, error)
	UpdateReview(ctx context.Context, rev models.Review) error
	DeleteReview(ctx context.Context, id int) (bool, error)
}

// FavoriteCascade is the slice of the favorite store the cascade needs.
type FavoriteCascade interface {
	DeleteByReviewID(ctx context.Context, reviewID int) (int64, error)
}

type ReviewService struct {
	ReviewsRepo   ReviewStore
	FavoritesRepo FavoriteCascade
	Users         guard.RoleLookup
}

// CreateReview validates and stores a review. The reviewer identity comes
// from the verified claims, never from the request body.
func (s *ReviewService) CreateReview(ctx context.Context, claims auth.Claims, rev models.Review) (models.Review, error) {
	if strings.TrimSpace(rev.FoodName) == "" {
		return models.Review{}, models.ErrMissingField
	}
	if !rev.Rating.Valid() {
		return models.Review{}, models.ErrInvalidRating
	}
	rev.ReviewerEmail = claims.Email
	if rev.ReviewerName == "" {
		rev.ReviewerName = claims.Name
	}
	return s.ReviewsRepo.CreateReview(ctx, rev)
}

func (s *ReviewService) GetReviews(ctx context.Context, filter models.ReviewFilter) (models.ReviewPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Sort != models.SortTop {
		filter.Sort = models.SortRecent
	}
	reviews, total, err := s.ReviewsRepo.GetReviewsWithFilters(ctx, filter)
	if err != nil {
		return models.ReviewPage{}, err
	}
	return models.ReviewPage{Reviews: reviews, TotalCount: total}, nil
}

func (s *ReviewService) GetFeatured(ctx context.Context) ([]models.Review, error) {
	return s.ReviewsRepo.GetFeaturedReviews(ctx, featuredCount)
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	return s.ReviewsRepo.GetReviewByID(ctx, id)
}

func (s *ReviewService) GetMyReviews(ctx context.Context, email string) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByEmail(ctx, email)
}

// UpdateReview lets the author or an admin change a review. Reviewer
// identity and posted date survive the update untouched.
func (s *ReviewService) UpdateReview(ctx context.Context, callerEmail string, rev models.Review) (models.Review, error) {
	existing, err := s.ReviewsRepo.GetReviewByID(ctx, rev.ID)
	if err != nil {
		return models.Review{}, err
	}
	if err := guard.OwnerOrRole(ctx, s.Users, models.RoleAdmin, callerEmail, existing.ReviewerEmail); err != nil {
		return models.Review{}, err
	}
	if strings.TrimSpace(rev.FoodName) == "" {
		return models.Review{}, models.ErrMissingField
	}
	if !rev.Rating.Valid() {
		return models.Review{}, models.ErrInvalidRating
	}
	rev.ReviewerEmail = existing.ReviewerEmail
	rev.ReviewerName = existing.ReviewerName
	rev.PostedDate = existing.PostedDate
	if err := s.ReviewsRepo.UpdateReview(ctx, rev); err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

// DeleteReview removes the review and then every favorite referencing it.
// The two deletes are sequential, not atomic: when the favorites sweep
// fails after the review is gone, the result carries the error so the
// caller can see the partial completion instead of it being swallowed.
// Deleting an absent id is an idempotent success; the favorites sweep
// still runs so dangling references get cleaned up.
func (s *ReviewService) DeleteReview(ctx context.Context, callerEmail string, id int) (models.CascadeResult, error) {
	var result models.CascadeResult

	existing, err := s.ReviewsRepo.GetReviewByID(ctx, id)
	if err == nil {
		if err := guard.OwnerOrRole(ctx, s.Users, models.RoleAdmin, callerEmail, existing.ReviewerEmail); err != nil {
			return models.CascadeResult{}, err
		}
		deleted, err := s.ReviewsRepo.DeleteReview(ctx, id)
		if err != nil {
			return models.CascadeResult{}, err
		}
		result.ReviewDeleted = deleted
	} else if !errors.Is(err, models.ErrReviewNotFound) {
		return models.CascadeResult{}, err
	}

	removed, err := s.FavoritesRepo.DeleteByReviewID(ctx, id)
	if err != nil {
		result.FavoritesError = err.Error()
		return result, nil
	}
	result.FavoritesRemoved = removed
	return result, nil
}
