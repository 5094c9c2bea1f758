package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tasteTribeBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	rev.PostedDate = time.Now()
	query := `
		INSERT INTO reviews
			(food_name, food_image, category, price, description, rating, reviewer_email, reviewer_name, posted_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		rev.FoodName, rev.FoodImage, rev.Category, rev.Price, rev.Description,
		int(rev.Rating), strings.ToLower(rev.ReviewerEmail), rev.ReviewerName, rev.PostedDate,
	)
	if err != nil {
		return models.Review{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	rev.ID = int(id)
	return rev, nil
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	query := reviewColumns + ` WHERE id = ?`
	row := r.DB.QueryRowContext(ctx, query, id)
	rev, err := scanReview(row)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

// GetReviewsWithFilters returns one page plus the total count of matching
// rows independent of pagination.
func (r *ReviewRepository) GetReviewsWithFilters(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error) {
	var (
		conditions []string
		params     []interface{}
	)

	if filter.Search != "" {
		conditions = append(conditions, "LOWER(food_name) LIKE ?")
		params = append(params, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.MinRating > 0 {
		conditions = append(conditions, "rating >= ?")
		params = append(params, filter.MinRating)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM reviews` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("reviews count: %w", err)
	}

	query := reviewColumns + where
	switch filter.Sort {
	case models.SortTop:
		query += ` ORDER BY rating DESC, posted_date DESC`
	default:
		query += ` ORDER BY posted_date DESC`
	}
	query += ` LIMIT ? OFFSET ?`
	params = append(params, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, total, rows.Err()
}

// GetFeaturedReviews is the fixed-size top slice, no pagination.
func (r *ReviewRepository) GetFeaturedReviews(ctx context.Context, limit int) ([]models.Review, error) {
	query := reviewColumns + ` ORDER BY rating DESC, posted_date DESC LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, limit)
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

func (r *ReviewRepository) GetReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	query := reviewColumns + ` WHERE reviewer_email = ? ORDER BY posted_date DESC`
	rows, err := r.DB.QueryContext(ctx, query, strings.ToLower(email))
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

func (r *ReviewRepository) UpdateReview(ctx context.Context, rev models.Review) error {
	query := `
		UPDATE reviews
		SET food_name = ?, food_image = ?, category = ?, price = ?, description = ?, rating = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		rev.FoodName, rev.FoodImage, rev.Category, rev.Price, rev.Description,
		int(rev.Rating), rev.ID,
	)
	if err != nil {
		return err
	}
	// Zero rows affected also happens when the update is a no-op, so the
	// existence check stays with the caller, who has already fetched the
	// review for the ownership decision.
	_ = result
	return nil
}

// DeleteReview reports whether a row was actually removed so the delete of
// an already-absent id can be treated as an idempotent success.
func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

const reviewColumns = `
	SELECT id, food_name, food_image, category, price, description, rating, reviewer_email, reviewer_name, posted_date
	FROM reviews`

func scanReview(row rowScanner) (models.Review, error) {
	var rev models.Review
	var foodImage, category, description, reviewerName sql.NullString
	var price sql.NullFloat64
	var rating int
	err := row.Scan(&rev.ID, &rev.FoodName, &foodImage, &category, &price, &description,
		&rating, &rev.ReviewerEmail, &reviewerName, &rev.PostedDate)
	if err != nil {
		return models.Review{}, err
	}
	rev.Rating = models.StarRating(rating)
	rev.FoodImage = foodImage.String
	rev.Category = category.String
	rev.Description = description.String
	rev.ReviewerName = reviewerName.String
	if price.Valid {
		rev.Price = &price.Float64
	}
	return rev, nil
}
