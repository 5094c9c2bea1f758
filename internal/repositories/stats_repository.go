package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tasteTribeBack/internal/models"
)

type StatsRepository struct {
	DB *sql.DB
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *StatsRepository) CountReviews(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM reviews`)
}

func (r *StatsRepository) CountFavorites(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM favorite_reviews`)
}

func (r *StatsRepository) CountReviewsByEmail(ctx context.Context, email string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM reviews WHERE reviewer_email = ?`, strings.ToLower(email))
}

func (r *StatsRepository) CountFavoritesByEmail(ctx context.Context, email string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM favorite_reviews WHERE user_email = ?`, strings.ToLower(email))
}

// ReviewsByMonth buckets reviews by (year, month) of posted_date,
// chronologically ascending.
func (r *StatsRepository) ReviewsByMonth(ctx context.Context) ([]models.MonthlyCount, error) {
	query := `
		SELECT YEAR(posted_date), MONTH(posted_date), COUNT(*)
		FROM reviews
		GROUP BY YEAR(posted_date), MONTH(posted_date)
		ORDER BY YEAR(posted_date), MONTH(posted_date)
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := []models.MonthlyCount{}
	for rows.Next() {
		var b models.MonthlyCount
		if err := rows.Scan(&b.Year, &b.Month, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// RatingDistribution counts reviews per rating value, rating ascending.
// Only ratings present in the data produce a bucket; the per-user variant
// below follows the same policy.
func (r *StatsRepository) RatingDistribution(ctx context.Context) ([]models.RatingBucket, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		GROUP BY rating
		ORDER BY rating
	`
	return r.distribution(ctx, query)
}

func (r *StatsRepository) RatingDistributionByEmail(ctx context.Context, email string) ([]models.RatingBucket, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE reviewer_email = ?
		GROUP BY rating
		ORDER BY rating
	`
	return r.distribution(ctx, query, strings.ToLower(email))
}

// RecentReviewsByEmail returns the caller's newest reviews for the
// personal dashboard.
func (r *StatsRepository) RecentReviewsByEmail(ctx context.Context, email string, limit int) ([]models.Review, error) {
	query := reviewColumns + ` WHERE reviewer_email = ? ORDER BY posted_date DESC LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, strings.ToLower(email), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

type ratingCount struct {
	rating int
	count  int
}

func (r *StatsRepository) distribution(ctx context.Context, query string, args ...any) ([]models.RatingBucket, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ratingCount
	for rows.Next() {
		var rc ratingCount
		if err := rows.Scan(&rc.rating, &rc.count); err != nil {
			return nil, err
		}
		counts = append(counts, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return buildRatingBuckets(counts), nil
}

// buildRatingBuckets labels each present rating value as "<n> Star".
// Absent rating values produce no bucket.
func buildRatingBuckets(counts []ratingCount) []models.RatingBucket {
	buckets := []models.RatingBucket{}
	for _, rc := range counts {
		buckets = append(buckets, models.RatingBucket{
			Label: fmt.Sprintf("%d Star", rc.rating),
			Count: rc.count,
		})
	}
	return buckets
}

func (r *StatsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}
