package models

// MonthlyCount is one (year, month) bucket of the review timeline.
type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// RatingBucket labels a rating value as "<n> Star". Buckets exist only for
// ratings actually present in the data; missing values are not zero-filled.
type RatingBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type AdminStats struct {
	TotalUsers         int            `json:"total_users"`
	TotalReviews       int            `json:"total_reviews"`
	TotalFavorites     int            `json:"total_favorites"`
	ReviewsByMonth     []MonthlyCount `json:"reviews_by_month"`
	RatingDistribution []RatingBucket `json:"rating_distribution"`
}

type UserStats struct {
	Email              string         `json:"email"`
	ReviewCount        int            `json:"review_count"`
	FavoriteCount      int            `json:"favorite_count"`
	RecentReviews      []Review       `json:"recent_reviews"`
	RatingDistribution []RatingBucket `json:"rating_distribution"`
}
