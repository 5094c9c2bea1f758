package models

import (
	"time"
)

// FavoriteReview keeps a denormalized snapshot of the review's display
// fields so listings survive a review that was deleted after favoriting.
type FavoriteReview struct {
	ID           int        `json:"id"`
	UserEmail    string     `json:"user_email"`
	ReviewID     int        `json:"review_id"`
	FoodName     string     `json:"food_name,omitempty"`
	FoodImage    string     `json:"food_image,omitempty"`
	Rating       StarRating `json:"rating,omitempty"`
	AddDate      time.Time  `json:"add_date"`
	ReviewExists bool       `json:"review_exists"`
}

type AddFavoriteRequest struct {
	ReviewID int `json:"review_id"`
}
