package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"tasteTribeBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

// AddToFavorites rejects a duplicate (user_email, review_id) pair. The
// count check is a fast path; the UNIQUE KEY on the pair closes the
// read-then-write race between concurrent requests.
func (r *FavoriteRepository) AddToFavorites(ctx context.Context, fav models.FavoriteReview) (models.FavoriteReview, error) {
	fav.UserEmail = strings.ToLower(fav.UserEmail)

	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorite_reviews WHERE user_email = ? AND review_id = ?`,
		fav.UserEmail, fav.ReviewID).Scan(&count)
	if err != nil {
		return models.FavoriteReview{}, err
	}
	if count > 0 {
		return models.FavoriteReview{}, models.ErrAlreadyFavorite
	}

	query := `
		INSERT INTO favorite_reviews (user_email, review_id, food_name, food_image, rating, add_date)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		fav.UserEmail, fav.ReviewID, fav.FoodName, fav.FoodImage, int(fav.Rating))
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return models.FavoriteReview{}, models.ErrAlreadyFavorite
		}
		return models.FavoriteReview{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.FavoriteReview{}, err
	}
	fav.ID = int(id)
	fav.ReviewExists = true
	return fav, nil
}

// GetFavoritesByUser joins the live review when it still exists and falls
// back to the snapshot captured at favoriting time when it does not.
func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, email string) ([]models.FavoriteReview, error) {
	query := `
		SELECT f.id, f.user_email, f.review_id, f.food_name, f.food_image, f.rating, f.add_date,
		       r.id IS NOT NULL, r.food_name, r.food_image, r.rating
		FROM favorite_reviews f
		LEFT JOIN reviews r ON f.review_id = r.id
		WHERE f.user_email = ?
		ORDER BY f.add_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := []models.FavoriteReview{}
	for rows.Next() {
		var fav models.FavoriteReview
		var snapName, snapImage sql.NullString
		var snapRating sql.NullInt64
		var liveName, liveImage sql.NullString
		var liveRating sql.NullInt64
		err := rows.Scan(&fav.ID, &fav.UserEmail, &fav.ReviewID, &snapName, &snapImage, &snapRating, &fav.AddDate,
			&fav.ReviewExists, &liveName, &liveImage, &liveRating)
		if err != nil {
			return nil, err
		}
		fav.FoodName = snapName.String
		fav.FoodImage = snapImage.String
		fav.Rating = models.StarRating(snapRating.Int64)
		if fav.ReviewExists {
			fav.FoodName = liveName.String
			fav.FoodImage = liveImage.String
			fav.Rating = models.StarRating(liveRating.Int64)
		}
		favs = append(favs, fav)
	}
	return favs, rows.Err()
}

func (r *FavoriteRepository) GetFavoriteByID(ctx context.Context, id int) (models.FavoriteReview, error) {
	query := `
		SELECT id, user_email, review_id, food_name, food_image, rating, add_date
		FROM favorite_reviews
		WHERE id = ?
	`
	var fav models.FavoriteReview
	var foodName, foodImage sql.NullString
	var rating sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&fav.ID, &fav.UserEmail, &fav.ReviewID, &foodName, &foodImage, &rating, &fav.AddDate)
	if err == sql.ErrNoRows {
		return models.FavoriteReview{}, models.ErrFavoriteNotFound
	}
	if err != nil {
		return models.FavoriteReview{}, err
	}
	fav.FoodName = foodName.String
	fav.FoodImage = foodImage.String
	fav.Rating = models.StarRating(rating.Int64)
	return fav, nil
}

func (r *FavoriteRepository) DeleteFavorite(ctx context.Context, id int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM favorite_reviews WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByReviewID is the second half of the cascade; returns how many
// favorites referenced the deleted review.
func (r *FavoriteRepository) DeleteByReviewID(ctx context.Context, reviewID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM favorite_reviews WHERE review_id = ?`, reviewID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
